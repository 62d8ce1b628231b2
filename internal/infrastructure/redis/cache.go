package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/avatarctic/sbv-scaffold/internal/core/ports"
)

// Option configures a Cache.
type Option func(*settings)

type settings struct {
	prefix string
	codec  Codec
}

// WithPrefix namespaces every key as "prefix:key".
func WithPrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// WithCodec replaces the default JSON codec.
func WithCodec(codec Codec) Option {
	return func(s *settings) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// Cache is a typed facade over Redis scalar, list, set and hash commands.
// It holds no mutable state and is safe for concurrent use; instances for
// different value types can share one client.
type Cache[T any] struct {
	r        redis.Cmdable
	settings settings
}

var (
	_ ports.ObjectCache[string] = (*Cache[string])(nil)
	_ ports.KeyCache            = (*Cache[any])(nil)
)

// NewCache creates a facade storing values of type T.
func NewCache[T any](r redis.Cmdable, opts ...Option) *Cache[T] {
	s := settings{codec: JSONCodec{}}
	for _, opt := range opts {
		opt(&s)
	}
	return &Cache[T]{r: r, settings: s}
}

// Rebind returns a facade for another value type sharing the client, prefix and codec of c.
func Rebind[U, T any](c *Cache[T]) *Cache[U] {
	return &Cache[U]{r: c.r, settings: c.settings}
}

func (c *Cache[T]) namespaced(key string) string {
	if c.settings.prefix == "" {
		return key
	}
	return c.settings.prefix + ":" + key
}

func (c *Cache[T]) stripNamespace(key string) string {
	if c.settings.prefix == "" {
		return key
	}
	return strings.TrimPrefix(key, c.settings.prefix+":")
}

func (c *Cache[T]) encode(v T) ([]byte, error) {
	b, err := c.settings.codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", ErrCodec, c.settings.codec.Name(), err)
	}
	return b, nil
}

func (c *Cache[T]) decode(b []byte) (T, error) {
	var v T
	if err := c.settings.codec.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("%w: decode %s: %w", ErrCodec, c.settings.codec.Name(), err)
	}
	return v, nil
}

// SetObject stores value under key, overwriting any previous value and TTL.
func (c *Cache[T]) SetObject(ctx context.Context, key string, value T) error {
	b, err := c.encode(value)
	if err != nil {
		return err
	}
	return wrapStoreError(c.r.Set(ctx, c.namespaced(key), b, 0).Err())
}

// SetObjectTTL stores value under key and sets its expiry in the same command.
func (c *Cache[T]) SetObjectTTL(ctx context.Context, key string, value T, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	b, err := c.encode(value)
	if err != nil {
		return err
	}
	return wrapStoreError(c.r.Set(ctx, c.namespaced(key), b, ttl).Err())
}

// Expire applies ttl to an existing key. It returns false when the key does not exist.
func (c *Cache[T]) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	var cmd *redis.BoolCmd
	if ttl%time.Second != 0 {
		cmd = c.r.PExpire(ctx, c.namespaced(key), ttl)
	} else {
		cmd = c.r.Expire(ctx, c.namespaced(key), ttl)
	}
	ok, err := cmd.Result()
	if err != nil {
		return false, wrapStoreError(err)
	}
	return ok, nil
}

// ExpireSeconds is Expire with the timeout given in seconds.
func (c *Cache[T]) ExpireSeconds(ctx context.Context, key string, seconds int64) (bool, error) {
	return c.Expire(ctx, key, time.Duration(seconds)*time.Second)
}

// GetObject returns the value stored under key; ok is false when the key does not exist.
func (c *Cache[T]) GetObject(ctx context.Context, key string) (T, bool, error) {
	var zero T
	b, err := c.r.Get(ctx, c.namespaced(key)).Bytes()
	if err == redis.Nil {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, wrapStoreError(err)
	}
	v, err := c.decode(b)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// DeleteObject removes key and reports whether it existed.
func (c *Cache[T]) DeleteObject(ctx context.Context, key string) (bool, error) {
	n, err := c.r.Del(ctx, c.namespaced(key)).Result()
	if err != nil {
		return false, wrapStoreError(err)
	}
	return n > 0, nil
}

// DeleteObjects removes keys and returns how many existed.
func (c *Cache[T]) DeleteObjects(ctx context.Context, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	ns := make([]string, len(keys))
	for i, k := range keys {
		ns[i] = c.namespaced(k)
	}
	n, err := c.r.Del(ctx, ns...).Result()
	if err != nil {
		return 0, wrapStoreError(err)
	}
	return n, nil
}

// Keys returns the keys matching a glob-style pattern. Matching is done by Redis (KEYS),
// so avoid broad patterns against large production keyspaces.
func (c *Cache[T]) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := c.r.Keys(ctx, c.namespaced(pattern)).Result()
	if err != nil {
		return nil, wrapStoreError(err)
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = c.stripNamespace(k)
	}
	return out, nil
}
