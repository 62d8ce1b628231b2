package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/avatarctic/sbv-scaffold/internal/core/domain/auth"
	"github.com/avatarctic/sbv-scaffold/internal/core/ports"
)

var (
	_ ports.AuthService         = (*AuthServiceMock)(nil)
	_ ports.CaptchaService      = (*CaptchaServiceMock)(nil)
	_ ports.CacheMonitorService = (*CacheMonitorServiceMock)(nil)
	_ ports.RateLimiterService  = (*RateLimiterServiceMock)(nil)
	_ ports.RateLimitRepository = (*RateLimitRepositoryMock)(nil)
	_ ports.HealthChecker       = (*HealthCheckerMock)(nil)
)

// AuthServiceMock is a lightweight mock for AuthService
type AuthServiceMock struct {
	LoginFn func(ctx context.Context, body *auth.LoginBody) error
}

func (m *AuthServiceMock) Login(ctx context.Context, body *auth.LoginBody) error {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, body)
	}
	return nil
}

// CaptchaServiceMock is a lightweight mock for CaptchaService
type CaptchaServiceMock struct {
	EnabledFn  func() bool
	GenerateFn func(ctx context.Context) (*auth.Captcha, error)
	VerifyFn   func(ctx context.Context, uuid, code string) error
}

func (m *CaptchaServiceMock) Enabled() bool {
	if m.EnabledFn != nil {
		return m.EnabledFn()
	}
	return false
}
func (m *CaptchaServiceMock) Generate(ctx context.Context) (*auth.Captcha, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx)
	}
	return &auth.Captcha{Enabled: false}, nil
}
func (m *CaptchaServiceMock) Verify(ctx context.Context, uuid, code string) error {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, uuid, code)
	}
	return nil
}

// CacheMonitorServiceMock is a lightweight mock for CacheMonitorService
type CacheMonitorServiceMock struct {
	ListKeysFn  func(ctx context.Context, pattern string) ([]string, error)
	GetValueFn  func(ctx context.Context, key string) (any, bool, error)
	DeleteKeyFn func(ctx context.Context, key string) (bool, error)
	ClearFn     func(ctx context.Context, pattern string) (int64, error)
}

func (m *CacheMonitorServiceMock) ListKeys(ctx context.Context, pattern string) ([]string, error) {
	if m.ListKeysFn != nil {
		return m.ListKeysFn(ctx, pattern)
	}
	return []string{}, nil
}
func (m *CacheMonitorServiceMock) GetValue(ctx context.Context, key string) (any, bool, error) {
	if m.GetValueFn != nil {
		return m.GetValueFn(ctx, key)
	}
	return nil, false, nil
}
func (m *CacheMonitorServiceMock) DeleteKey(ctx context.Context, key string) (bool, error) {
	if m.DeleteKeyFn != nil {
		return m.DeleteKeyFn(ctx, key)
	}
	return false, nil
}
func (m *CacheMonitorServiceMock) Clear(ctx context.Context, pattern string) (int64, error) {
	if m.ClearFn != nil {
		return m.ClearFn(ctx, pattern)
	}
	return 0, nil
}

// RateLimiterServiceMock allows every request unless AllowFn says otherwise
type RateLimiterServiceMock struct {
	AllowFn func(ctx context.Context, subject string) (bool, int, int, time.Time, error)
}

func (m *RateLimiterServiceMock) Allow(ctx context.Context, subject string) (bool, int, int, time.Time, error) {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, subject)
	}
	return true, 1, 1, time.Now().Add(time.Minute), nil
}

// RateLimitRepositoryMock is a lightweight mock for RateLimitRepository
type RateLimitRepositoryMock struct {
	IncrementWindowFn func(ctx context.Context, subject string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error)
}

func (m *RateLimitRepositoryMock) IncrementWindow(ctx context.Context, subject string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	if m.IncrementWindowFn != nil {
		return m.IncrementWindowFn(ctx, subject, window, keyPrefix, ttl)
	}
	return 0, time.Now().Truncate(window), fmt.Errorf("not configured")
}

// HealthCheckerMock reports Err from Check
type HealthCheckerMock struct {
	NameValue string
	Err       error
}

func (m *HealthCheckerMock) Name() string                    { return m.NameValue }
func (m *HealthCheckerMock) Check(ctx context.Context) error { return m.Err }
