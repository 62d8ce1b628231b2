package auth

import (
	"errors"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrCaptchaRequired    = errors.New("captcha code and uuid are required")
	ErrCaptchaExpired     = errors.New("captcha expired")
	ErrCaptchaMismatch    = errors.New("captcha mismatch")
)

// LoginBody is the payload of POST /login.
// Code and UUID carry the captcha answer and the id returned by the captcha endpoint.
type LoginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
	UUID     string `json:"uuid"`
}

// Validate checks the presence of the fields the login flow reads.
func (b *LoginBody) Validate(captchaEnabled bool) error {
	if strings.TrimSpace(b.Username) == "" || b.Password == "" {
		return ErrMissingCredentials
	}
	if captchaEnabled && (strings.TrimSpace(b.Code) == "" || strings.TrimSpace(b.UUID) == "") {
		return ErrCaptchaRequired
	}
	return nil
}

// Captcha is an issued challenge. Code is only exposed to clients outside production.
type Captcha struct {
	UUID    string
	Code    string
	Enabled bool
}
