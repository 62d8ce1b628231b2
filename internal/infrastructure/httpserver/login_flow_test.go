package httpserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"github.com/avatarctic/sbv-scaffold/internal/application/services"
	"github.com/avatarctic/sbv-scaffold/internal/core/domain/result"
	"github.com/avatarctic/sbv-scaffold/internal/infrastructure/httpserver"
	infraredis "github.com/avatarctic/sbv-scaffold/internal/infrastructure/redis"
)

func newLoginFlowServer(t *testing.T) (string, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	cache := infraredis.NewCache[string](client)
	captcha := services.NewCaptchaService(cache, &services.CaptchaConfig{Enabled: true, TTL: time.Minute, Length: 4, KeyPrefix: "captcha_codes"}, quietLogger())
	ts := newTestServer(t, &httpserver.ServerConfig{Environment: "development"}, httpserver.ServerDeps{
		AuthService:    services.NewAuthService(captcha, quietLogger()),
		CaptchaService: captcha,
	})
	return ts.URL, mr
}

func issueCaptcha(t *testing.T, base string) (string, string) {
	t.Helper()
	_, env := doJSON(t, http.MethodGet, base+"/captchaImage", nil)
	require.Equal(t, true, env["captchaEnabled"])
	id, _ := env["uuid"].(string)
	code, _ := env["captchaCode"].(string)
	require.NotEmpty(t, id)
	require.Len(t, code, 4)
	return id, code
}

func TestLoginFlow_CaptchaIsSingleUse(t *testing.T) {
	base, mr := newLoginFlowServer(t)
	id, code := issueCaptcha(t, base)
	require.True(t, mr.Exists("captcha_codes:"+id))

	body := map[string]string{"username": "admin", "password": "admin123", "code": code, "uuid": id}
	resp, env := doJSON(t, http.MethodPost, base+"/login", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, result.CodeSuccess, envelopeCode(t, env))
	require.False(t, mr.Exists("captcha_codes:"+id))

	_, env = doJSON(t, http.MethodPost, base+"/login", body)
	require.Equal(t, result.CodeFail, envelopeCode(t, env))
	require.Equal(t, "验证码已失效", env["msg"])
}

func TestLoginFlow_WrongAndExpiredCodes(t *testing.T) {
	base, mr := newLoginFlowServer(t)

	id, _ := issueCaptcha(t, base)
	_, env := doJSON(t, http.MethodPost, base+"/login", map[string]string{"username": "a", "password": "b", "code": "????", "uuid": id})
	require.Equal(t, result.CodeFail, envelopeCode(t, env))
	require.Equal(t, "验证码错误", env["msg"])

	id, code := issueCaptcha(t, base)
	mr.FastForward(2 * time.Minute)
	_, env = doJSON(t, http.MethodPost, base+"/login", map[string]string{"username": "a", "password": "b", "code": code, "uuid": id})
	require.Equal(t, "验证码已失效", env["msg"])

	resp, env := doJSON(t, http.MethodPost, base+"/login", map[string]string{"username": "a", "password": "b"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "验证码不能为空", env["msg"])
}
