package services_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"

	infraredis "github.com/avatarctic/sbv-scaffold/internal/infrastructure/redis"
)

func newStringCache(t *testing.T) (*infraredis.Cache[string], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return infraredis.NewCache[string](client), mr
}
