package cache

import (
	"time"

	catalogdomain "github.com/tokopilih/tokopilih/internal/catalog/domain"
	"github.com/tokopilih/tokopilih/internal/config"
)

const homeKey = "home"

// HomeCache memoizes the assembled landing-page payload. The home page fans
// out into five queries per request, and its content only changes when the
// catalog is reseeded, so a short TTL takes most of that load off the
// database.
type HomeCache struct {
	entries Cache[string, *catalogdomain.HomePayload]
	ttl     time.Duration
}

func NewHomeCache(cfg config.Config) *HomeCache {
	return &HomeCache{
		entries: NewTTLCache[string, *catalogdomain.HomePayload](),
		ttl:     time.Duration(cfg.HomeCacheTTL) * time.Second,
	}
}

func (c *HomeCache) Get() (*catalogdomain.HomePayload, bool) {
	if c == nil {
		return nil, false
	}
	return c.entries.Get(homeKey)
}

func (c *HomeCache) Set(payload *catalogdomain.HomePayload) {
	if c == nil || payload == nil {
		return
	}
	c.entries.Set(homeKey, payload, c.ttl)
}
