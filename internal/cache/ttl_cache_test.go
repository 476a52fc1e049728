package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c := NewTTLCache[string, int]().(*ttlCache[string, int])
	c.now = func() time.Time { return now }

	c.Set("a", 42, time.Minute)

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 42, got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("a")
	require.False(t, ok)

	// Expired entry is dropped, not just hidden.
	require.NotContains(t, c.entries, "a")
}

func TestTTLCacheZeroTTLNeverStores(t *testing.T) {
	c := NewTTLCache[string, int]()
	c.Set("a", 1, 0)
	_, ok := c.Get("a")
	require.False(t, ok)
}

func TestTTLCacheDelete(t *testing.T) {
	c := NewTTLCache[string, string]()
	c.Set("k", "v", time.Hour)
	c.Delete("k")
	_, ok := c.Get("k")
	require.False(t, ok)
}
