package observability

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tokopilih/tokopilih/internal/config"
)

func TestLoadConfigDerivesDevelopment(t *testing.T) {
	require.True(t, LoadConfig(config.Config{Environment: "local"}).Development)
	require.False(t, LoadConfig(config.Config{Environment: "production"}).Development)
}

func TestDebug(t *testing.T) {
	require.True(t, Config{LogLevel: "debug"}.Debug())
	require.True(t, Config{LogLevel: "info", Development: true}.Debug())
	require.False(t, Config{LogLevel: "info"}.Debug())
}
