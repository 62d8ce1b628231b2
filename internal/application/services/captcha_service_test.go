package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/avatarctic/sbv-scaffold/internal/application/services"
	"github.com/avatarctic/sbv-scaffold/internal/core/domain/auth"
	infraredis "github.com/avatarctic/sbv-scaffold/internal/infrastructure/redis"
)

func TestCaptcha_GenerateStoresCodeWithTTL(t *testing.T) {
	cache, mr := newStringCache(t)
	svc := impl.NewCaptchaService(cache, &impl.CaptchaConfig{Enabled: true, TTL: time.Minute, Length: 6, KeyPrefix: "cc"}, logrus.New())

	c, err := svc.Generate(context.Background())
	require.NoError(t, err)
	require.True(t, c.Enabled)
	require.Len(t, c.Code, 6)
	require.NotEmpty(t, c.UUID)

	key := "cc:" + c.UUID
	require.True(t, mr.Exists(key))
	require.Equal(t, time.Minute, mr.TTL(key))
}

func TestCaptcha_VerifyIsSingleUseAndCaseInsensitive(t *testing.T) {
	cache, _ := newStringCache(t)
	svc := impl.NewCaptchaService(cache, &impl.CaptchaConfig{Enabled: true}, nil)
	ctx := context.Background()

	c, err := svc.Generate(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, c.UUID, strings.ToLower(c.Code)))
	require.ErrorIs(t, svc.Verify(ctx, c.UUID, c.Code), auth.ErrCaptchaExpired)
}

func TestCaptcha_VerifyMismatchConsumesCode(t *testing.T) {
	cache, _ := newStringCache(t)
	svc := impl.NewCaptchaService(cache, nil, nil)
	ctx := context.Background()

	c, err := svc.Generate(ctx)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Verify(ctx, c.UUID, "wrong"), auth.ErrCaptchaMismatch)
	require.ErrorIs(t, svc.Verify(ctx, c.UUID, c.Code), auth.ErrCaptchaExpired)
}

func TestCaptcha_ExpiredAfterTTL(t *testing.T) {
	cache, mr := newStringCache(t)
	svc := impl.NewCaptchaService(cache, &impl.CaptchaConfig{Enabled: true, TTL: 30 * time.Second}, nil)
	ctx := context.Background()

	c, err := svc.Generate(ctx)
	require.NoError(t, err)
	mr.FastForward(time.Minute)

	require.ErrorIs(t, svc.Verify(ctx, c.UUID, c.Code), auth.ErrCaptchaExpired)
}

func TestCaptcha_Disabled(t *testing.T) {
	cache, mr := newStringCache(t)
	svc := impl.NewCaptchaService(cache, &impl.CaptchaConfig{Enabled: false}, nil)

	c, err := svc.Generate(context.Background())
	require.NoError(t, err)
	require.False(t, c.Enabled)
	require.Empty(t, mr.Keys())
	require.NoError(t, svc.Verify(context.Background(), "any", "any"))
}

func TestCaptcha_StoreDown(t *testing.T) {
	cache, mr := newStringCache(t)
	svc := impl.NewCaptchaService(cache, nil, nil)
	mr.Close()

	_, err := svc.Generate(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, infraredis.ErrStoreUnavailable))
}
