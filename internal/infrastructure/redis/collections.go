package redis

import (
	"context"
)

// SetList appends values to the tail of the list at key, in order, and returns the list length.
func (c *Cache[T]) SetList(ctx context.Context, key string, values []T) (int64, error) {
	ns := c.namespaced(key)
	if len(values) == 0 {
		n, err := c.r.LLen(ctx, ns).Result()
		return n, wrapStoreError(err)
	}
	args := make([]interface{}, len(values))
	for i, v := range values {
		b, err := c.encode(v)
		if err != nil {
			return 0, err
		}
		args[i] = b
	}
	n, err := c.r.RPush(ctx, ns, args...).Result()
	if err != nil {
		return 0, wrapStoreError(err)
	}
	return n, nil
}

// GetList returns the whole list at key; a missing key yields an empty slice.
func (c *Cache[T]) GetList(ctx context.Context, key string) ([]T, error) {
	raw, err := c.r.LRange(ctx, c.namespaced(key), 0, -1).Result()
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return c.decodeAll(raw)
}

// SetSet adds every value to the set at key, one SADD per element, and returns a handle bound to key.
// The adds are not atomic as a group; each one is idempotent.
func (c *Cache[T]) SetSet(ctx context.Context, key string, values []T) (*BoundSet[T], error) {
	set := c.BoundSet(key)
	for _, v := range values {
		if _, err := set.Add(ctx, v); err != nil {
			return set, err
		}
	}
	return set, nil
}

// GetSet returns the members of the set at key; a missing key yields an empty slice.
func (c *Cache[T]) GetSet(ctx context.Context, key string) ([]T, error) {
	return c.BoundSet(key).Members(ctx)
}

func (c *Cache[T]) decodeAll(raw []string) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, s := range raw {
		v, err := c.decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// BoundSet is a set handle bound to one key.
type BoundSet[T any] struct {
	cache *Cache[T]
	key   string
}

// BoundSet returns a handle for the set at key without touching Redis.
func (c *Cache[T]) BoundSet(key string) *BoundSet[T] {
	return &BoundSet[T]{cache: c, key: key}
}

func (s *BoundSet[T]) Key() string { return s.key }

// Add adds members and returns how many were not already present.
func (s *BoundSet[T]) Add(ctx context.Context, members ...T) (int64, error) {
	if len(members) == 0 {
		return 0, nil
	}
	args, err := s.encode(members)
	if err != nil {
		return 0, err
	}
	n, err := s.cache.r.SAdd(ctx, s.cache.namespaced(s.key), args...).Result()
	if err != nil {
		return 0, wrapStoreError(err)
	}
	return n, nil
}

// Remove removes members and returns how many were present.
func (s *BoundSet[T]) Remove(ctx context.Context, members ...T) (int64, error) {
	if len(members) == 0 {
		return 0, nil
	}
	args, err := s.encode(members)
	if err != nil {
		return 0, err
	}
	n, err := s.cache.r.SRem(ctx, s.cache.namespaced(s.key), args...).Result()
	if err != nil {
		return 0, wrapStoreError(err)
	}
	return n, nil
}

func (s *BoundSet[T]) Members(ctx context.Context) ([]T, error) {
	raw, err := s.cache.r.SMembers(ctx, s.cache.namespaced(s.key)).Result()
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return s.cache.decodeAll(raw)
}

func (s *BoundSet[T]) IsMember(ctx context.Context, member T) (bool, error) {
	b, err := s.cache.encode(member)
	if err != nil {
		return false, err
	}
	ok, err := s.cache.r.SIsMember(ctx, s.cache.namespaced(s.key), b).Result()
	if err != nil {
		return false, wrapStoreError(err)
	}
	return ok, nil
}

func (s *BoundSet[T]) Size(ctx context.Context) (int64, error) {
	n, err := s.cache.r.SCard(ctx, s.cache.namespaced(s.key)).Result()
	if err != nil {
		return 0, wrapStoreError(err)
	}
	return n, nil
}

func (s *BoundSet[T]) encode(members []T) ([]interface{}, error) {
	args := make([]interface{}, len(members))
	for i, m := range members {
		b, err := s.cache.encode(m)
		if err != nil {
			return nil, err
		}
		args[i] = b
	}
	return args, nil
}
