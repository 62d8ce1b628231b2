package ports

import (
	"context"

	"github.com/avatarctic/sbv-scaffold/internal/core/domain/auth"
)

// AuthService handles the login flow. Credentials are not checked against any user store.
type AuthService interface {
	Login(ctx context.Context, body *auth.LoginBody) error
}

// CaptchaService issues and verifies single-use captcha codes kept in the cache.
type CaptchaService interface {
	Enabled() bool
	Generate(ctx context.Context) (*auth.Captcha, error)
	// Verify consumes the code stored for uuid; it fails with auth.ErrCaptchaExpired or auth.ErrCaptchaMismatch.
	Verify(ctx context.Context, uuid, code string) error
}
