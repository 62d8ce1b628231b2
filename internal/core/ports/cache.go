package ports

import (
	"context"
	"time"
)

// ObjectCache is the scalar part of the cache facade, typed by the stored value.
type ObjectCache[T any] interface {
	SetObject(ctx context.Context, key string, value T) error
	SetObjectTTL(ctx context.Context, key string, value T, ttl time.Duration) error
	GetObject(ctx context.Context, key string) (T, bool, error)
	DeleteObject(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// KeyCache enumerates and removes keys regardless of the value shape they hold.
type KeyCache interface {
	Keys(ctx context.Context, pattern string) ([]string, error)
	DeleteObject(ctx context.Context, key string) (bool, error)
	DeleteObjects(ctx context.Context, keys []string) (int64, error)
}

// CacheMonitorService backs the cache administration endpoints.
type CacheMonitorService interface {
	ListKeys(ctx context.Context, pattern string) ([]string, error)
	GetValue(ctx context.Context, key string) (any, bool, error)
	DeleteKey(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context, pattern string) (int64, error)
}
