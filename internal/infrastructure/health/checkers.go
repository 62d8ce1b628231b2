package health

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/avatarctic/sbv-scaffold/internal/core/ports"
)

// redisHealthChecker pings the cache store; it works for single-node and cluster clients.
type redisHealthChecker struct{ client redis.Cmdable }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client redis.Cmdable) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}
