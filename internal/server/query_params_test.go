package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	require.Equal(t, 1, parsePage(""))
	require.Equal(t, 1, parsePage("  "))
	require.Equal(t, 1, parsePage("banana"))
	require.Equal(t, 1, parsePage("0"))
	require.Equal(t, 1, parsePage("-4"))
	require.Equal(t, 3, parsePage("3"))
	require.Equal(t, 7, parsePage(" 7 "))
}
