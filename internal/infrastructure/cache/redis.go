package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// OpenRedis connects and pings once so misconfiguration fails at startup.
func OpenRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := Ping(ctx, r); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Ping bounds the round trip so readiness probes never hang.
func Ping(ctx context.Context, r *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return r.Ping(ctx).Err()
}
