package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// HashValue is one entry of a multi-field hash read, aligned with the requested field.
type HashValue[T any] struct {
	Field string
	Value T
	Found bool
}

// SetMap merges m into the hash at key, overwriting overlapping fields. A nil or empty map is a no-op.
func (c *Cache[T]) SetMap(ctx context.Context, key string, m map[string]T) error {
	if len(m) == 0 {
		return nil
	}
	values := make(map[string]interface{}, len(m))
	for field, v := range m {
		b, err := c.encode(v)
		if err != nil {
			return err
		}
		values[field] = b
	}
	return wrapStoreError(c.r.HSet(ctx, c.namespaced(key), values).Err())
}

// GetMap returns every field of the hash at key; a missing key yields an empty map.
func (c *Cache[T]) GetMap(ctx context.Context, key string) (map[string]T, error) {
	raw, err := c.r.HGetAll(ctx, c.namespaced(key)).Result()
	if err != nil {
		return nil, wrapStoreError(err)
	}
	out := make(map[string]T, len(raw))
	for field, s := range raw {
		v, err := c.decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out[field] = v
	}
	return out, nil
}

// SetMapValue sets one field of the hash at key.
func (c *Cache[T]) SetMapValue(ctx context.Context, key, field string, value T) error {
	b, err := c.encode(value)
	if err != nil {
		return err
	}
	return wrapStoreError(c.r.HSet(ctx, c.namespaced(key), field, b).Err())
}

// GetMapValue returns one field of the hash at key; ok is false when the key or field is missing.
func (c *Cache[T]) GetMapValue(ctx context.Context, key, field string) (T, bool, error) {
	var zero T
	b, err := c.r.HGet(ctx, c.namespaced(key), field).Bytes()
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

// DeleteMapValue removes one field of the hash at key. Missing keys and fields are ignored.
func (c *Cache[T]) DeleteMapValue(ctx context.Context, key, field string) error {
	return wrapStoreError(c.r.HDel(ctx, c.namespaced(key), field).Err())
}

// GetMultiMapValue reads several fields at once. The result has one entry per requested field,
// in request order, with Found=false for fields that are not set.
func (c *Cache[T]) GetMultiMapValue(ctx context.Context, key string, fields []string) ([]HashValue[T], error) {
	out := make([]HashValue[T], 0, len(fields))
	if len(fields) == 0 {
		return out, nil
	}
	raw, err := c.r.HMGet(ctx, c.namespaced(key), fields...).Result()
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if len(raw) != len(fields) {
		return nil, fmt.Errorf("hmget returned %d values for %d fields", len(raw), len(fields))
	}
	for i, field := range fields {
		hv := HashValue[T]{Field: field}
		if s, ok := raw[i].(string); ok {
			v, err := c.decode([]byte(s))
			if err != nil {
				return nil, err
			}
			hv.Value = v
			hv.Found = true
		}
		out = append(out, hv)
	}
	return out, nil
}
