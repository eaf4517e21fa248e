// Package redis implements a fixed-window rate limit store on Redis so
// several API replicas share one set of counters.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore counts hits with INCR and starts the window expiry on
// the first hit of each window.
type RateLimitStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewRateLimitStore creates a store that namespaces its keys with prefix.
func NewRateLimitStore(client goredis.UniversalClient, prefix string) *RateLimitStore {
	return &RateLimitStore{client: client, prefix: prefix}
}

// Hit registers one request for key and returns the count in the current
// window together with the time left until the window resets.
func (s *RateLimitStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	fullKey := s.prefix + key

	var (
		incr *goredis.IntCmd
		ttl  *goredis.DurationCmd
	)
	_, err := s.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, fullKey)
		ttl = p.PTTL(ctx, fullKey)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("redis hit %s: %w", key, err)
	}

	count := incr.Val()
	resetIn := ttl.Val()

	// A fresh key (or one that lost its expiry) has no TTL yet.
	if count == 1 || resetIn < 0 {
		if err := s.client.PExpire(ctx, fullKey, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("redis expire %s: %w", key, err)
		}
		resetIn = window
	}

	return count, resetIn, nil
}

// NewClient opens a Redis client and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	return client, nil
}
