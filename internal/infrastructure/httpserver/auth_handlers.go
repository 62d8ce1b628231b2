package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/sbv-scaffold/internal/core/domain/auth"
	"github.com/avatarctic/sbv-scaffold/internal/core/domain/result"
)

const (
	msgInvalidBody        = "请求参数格式错误"
	msgMissingCredentials = "用户名或密码不能为空"
	msgCaptchaRequired    = "验证码不能为空"
	msgCaptchaExpired     = "验证码已失效"
	msgCaptchaMismatch    = "验证码错误"
)

// login accepts the credentials body. Validation failures are reported with HTTP 400,
// captcha failures as error envelopes with HTTP 200.
func (s *Server) login(c echo.Context) error {
	var body auth.LoginBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	}

	err := s.authSvc.Login(c.Request().Context(), &body)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, result.Success())
	case errors.Is(err, auth.ErrMissingCredentials):
		return echo.NewHTTPError(http.StatusBadRequest, msgMissingCredentials)
	case errors.Is(err, auth.ErrCaptchaRequired):
		return echo.NewHTTPError(http.StatusBadRequest, msgCaptchaRequired)
	case errors.Is(err, auth.ErrCaptchaExpired):
		return c.JSON(http.StatusOK, result.ErrorMsg(msgCaptchaExpired))
	case errors.Is(err, auth.ErrCaptchaMismatch):
		return c.JSON(http.StatusOK, result.ErrorMsg(msgCaptchaMismatch))
	default:
		return s.storeError(c, err, "login")
	}
}

// captchaImage issues a captcha challenge. The code itself is only echoed back in development.
func (s *Server) captchaImage(c echo.Context) error {
	captcha, err := s.captchaSvc.Generate(c.Request().Context())
	if err != nil {
		return s.storeError(c, err, "captcha")
	}

	res := result.Success().Set("captchaEnabled", captcha.Enabled)
	if captcha.Enabled {
		res.Set("uuid", captcha.UUID)
		if s.isDevelopment() {
			res.Set("captchaCode", captcha.Code)
		}
	}
	return c.JSON(http.StatusOK, res)
}
