package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	impl "github.com/avatarctic/sbv-scaffold/internal/application/services"
	"github.com/avatarctic/sbv-scaffold/internal/core/domain/auth"
	tmocks "github.com/avatarctic/sbv-scaffold/test/mocks"
)

func TestLogin_MissingCredentials(t *testing.T) {
	svc := impl.NewAuthService(&tmocks.CaptchaServiceMock{}, nil)

	require.ErrorIs(t, svc.Login(context.Background(), &auth.LoginBody{Username: "admin"}), auth.ErrMissingCredentials)
	require.ErrorIs(t, svc.Login(context.Background(), &auth.LoginBody{Password: "x"}), auth.ErrMissingCredentials)
	require.ErrorIs(t, svc.Login(context.Background(), nil), auth.ErrMissingCredentials)
}

func TestLogin_CaptchaDisabledSkipsVerification(t *testing.T) {
	captcha := &tmocks.CaptchaServiceMock{VerifyFn: func(ctx context.Context, uuid, code string) error {
		t.Fatal("verify should not be called when captcha is disabled")
		return nil
	}}
	svc := impl.NewAuthService(captcha, nil)

	require.NoError(t, svc.Login(context.Background(), &auth.LoginBody{Username: "admin", Password: "admin123"}))
}

func TestLogin_CaptchaRequiredWhenEnabled(t *testing.T) {
	captcha := &tmocks.CaptchaServiceMock{EnabledFn: func() bool { return true }}
	svc := impl.NewAuthService(captcha, nil)

	err := svc.Login(context.Background(), &auth.LoginBody{Username: "admin", Password: "admin123"})
	require.ErrorIs(t, err, auth.ErrCaptchaRequired)
}

func TestLogin_WithRealCaptcha(t *testing.T) {
	cache, _ := newStringCache(t)
	captcha := impl.NewCaptchaService(cache, &impl.CaptchaConfig{Enabled: true}, nil)
	svc := impl.NewAuthService(captcha, nil)
	ctx := context.Background()

	c, err := captcha.Generate(ctx)
	require.NoError(t, err)

	err = svc.Login(ctx, &auth.LoginBody{Username: "admin", Password: "admin123", UUID: c.UUID, Code: "nope"})
	require.ErrorIs(t, err, auth.ErrCaptchaMismatch)

	c, err = captcha.Generate(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Login(ctx, &auth.LoginBody{Username: "admin", Password: "admin123", UUID: c.UUID, Code: c.Code}))
}
