package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/avatarctic/sbv-scaffold/internal/core/ports"
)

const defaultKeyPattern = "*"

// CacheMonitorService lets operators inspect and evict cache keys.
type CacheMonitorService struct {
	keys   ports.KeyCache
	values ports.ObjectCache[any]
	logger *logrus.Logger
}

var _ ports.CacheMonitorService = (*CacheMonitorService)(nil)

func NewCacheMonitorService(keys ports.KeyCache, values ports.ObjectCache[any], logger *logrus.Logger) *CacheMonitorService {
	return &CacheMonitorService{keys: keys, values: values, logger: logger}
}

func normalizePattern(pattern string) string {
	if strings.TrimSpace(pattern) == "" {
		return defaultKeyPattern
	}
	return pattern
}

// ListKeys returns the matching keys sorted.
func (s *CacheMonitorService) ListKeys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := s.keys.Keys(ctx, normalizePattern(pattern))
	if err != nil {
		return nil, fmt.Errorf("list cache keys: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *CacheMonitorService) GetValue(ctx context.Context, key string) (any, bool, error) {
	v, ok, err := s.values.GetObject(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("get cache value %q: %w", key, err)
	}
	return v, ok, nil
}

func (s *CacheMonitorService) DeleteKey(ctx context.Context, key string) (bool, error) {
	removed, err := s.keys.DeleteObject(ctx, key)
	if err != nil {
		return false, fmt.Errorf("delete cache key %q: %w", key, err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"key": key, "removed": removed}).Info("cache key deleted")
	}
	return removed, nil
}

// Clear deletes every key matching pattern and returns how many were removed.
func (s *CacheMonitorService) Clear(ctx context.Context, pattern string) (int64, error) {
	pattern = normalizePattern(pattern)
	keys, err := s.keys.Keys(ctx, pattern)
	if err != nil {
		return 0, fmt.Errorf("list cache keys: %w", err)
	}
	n, err := s.keys.DeleteObjects(ctx, keys)
	if err != nil {
		return 0, fmt.Errorf("delete cache keys: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"pattern": pattern, "matched": len(keys), "removed": n}).Info("cache cleared")
	}
	return n, nil
}
