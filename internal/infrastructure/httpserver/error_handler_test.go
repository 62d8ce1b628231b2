package httpserver_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avatarctic/sbv-scaffold/internal/infrastructure/httpserver"
	"github.com/avatarctic/sbv-scaffold/test/mocks"
)

func TestErrorHandler_UnknownRouteRendersEnvelope(t *testing.T) {
	ts := newTestServer(t, nil, httpserver.ServerDeps{})

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/nope", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, http.StatusNotFound, envelopeCode(t, env))
	require.NotEmpty(t, env["msg"])
	_, hasData := env["data"]
	require.False(t, hasData)
}

func TestErrorHandler_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil, httpserver.ServerDeps{AuthService: &mocks.AuthServiceMock{}, CaptchaService: &mocks.CaptchaServiceMock{}})

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/login", nil)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.Equal(t, http.StatusMethodNotAllowed, envelopeCode(t, env))
}

func TestRateLimit_RejectsWith429(t *testing.T) {
	limiter := &mocks.RateLimiterServiceMock{AllowFn: func(ctx context.Context, subject string) (bool, int, int, time.Time, error) {
		return false, 0, 10, time.Now().Add(time.Minute), nil
	}}
	ts := newTestServer(t, nil, httpserver.ServerDeps{
		AuthService:        &mocks.AuthServiceMock{},
		CaptchaService:     &mocks.CaptchaServiceMock{},
		RateLimiterService: limiter,
	})

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/captchaImage", nil)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.Equal(t, http.StatusTooManyRequests, envelopeCode(t, env))
	require.Equal(t, "10", resp.Header.Get("X-RateLimit-Limit"))
	require.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
}
