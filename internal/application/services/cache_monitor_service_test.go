package services_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	impl "github.com/avatarctic/sbv-scaffold/internal/application/services"
	infraredis "github.com/avatarctic/sbv-scaffold/internal/infrastructure/redis"
)

func newMonitor(t *testing.T) (*impl.CacheMonitorService, *infraredis.Cache[string]) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	strings := infraredis.NewCache[string](client, infraredis.WithPrefix("app"))
	values := infraredis.Rebind[any](strings)
	return impl.NewCacheMonitorService(values, values, nil), strings
}

func TestMonitor_ListGetDeleteClear(t *testing.T) {
	ctx := context.Background()
	svc, cache := newMonitor(t)

	require.NoError(t, cache.SetObject(ctx, "captcha_codes:b", "B"))
	require.NoError(t, cache.SetObject(ctx, "captcha_codes:a", "A"))
	require.NoError(t, cache.SetObject(ctx, "config:site", "x"))

	keys, err := svc.ListKeys(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"captcha_codes:a", "captcha_codes:b", "config:site"}, keys)

	v, ok, err := svc.GetValue(ctx, "config:site")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "x", v)

	_, ok, err = svc.GetValue(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	n, err := svc.Clear(ctx, "captcha_codes:*")
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	removed, err := svc.DeleteKey(ctx, "config:site")
	require.NoError(t, err)
	require.True(t, removed)

	keys, err = svc.ListKeys(ctx, "*")
	require.NoError(t, err)
	require.Empty(t, keys)

	n, err = svc.Clear(ctx, "*")
	require.NoError(t, err)
	require.Zero(t, n)
}
