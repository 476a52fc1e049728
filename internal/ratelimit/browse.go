package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/tokopilih/tokopilih/internal/config"
)

const keyBrowseClient = "browse:client:%s"

// BrowseLimiter throttles storefront reads per client address. A nil limiter
// allows everything, so callers never need to branch on configuration.
type BrowseLimiter struct {
	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewBrowseLimiter(cfg config.Config) (*BrowseLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.BrowseRate <= 0 || limitCfg.BrowseBurst <= 0 {
		return nil, errors.New("browse rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	return &BrowseLimiter{
		bucket: NewTokenBucket(client),
		rate:   limitCfg.BrowseRate,
		burst:  limitCfg.BrowseBurst,
	}, nil
}

func (l *BrowseLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

func (l *BrowseLimiter) Allow(ctx context.Context, clientAddr string) (Result, error) {
	if !l.Enabled() {
		return Result{Allowed: true}, nil
	}
	return l.bucket.Allow(ctx, fmt.Sprintf(keyBrowseClient, strings.TrimSpace(clientAddr)), l.rate, l.burst)
}
