package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/avatarctic/sbv-scaffold/internal/core/domain/auth"
	"github.com/avatarctic/sbv-scaffold/internal/core/ports"
)

type AuthService struct {
	captcha ports.CaptchaService
	logger  *logrus.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(captcha ports.CaptchaService, logger *logrus.Logger) *AuthService {
	return &AuthService{captcha: captcha, logger: logger}
}

// Login checks the shape of the request and the captcha answer.
// Credentials are accepted as given; there is no user store to check them against.
func (s *AuthService) Login(ctx context.Context, body *auth.LoginBody) error {
	if body == nil {
		return auth.ErrMissingCredentials
	}
	captchaEnabled := s.captcha != nil && s.captcha.Enabled()
	if err := body.Validate(captchaEnabled); err != nil {
		return err
	}
	if captchaEnabled {
		if err := s.captcha.Verify(ctx, body.UUID, body.Code); err != nil {
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{"username": body.Username}).WithError(err).Info("login rejected")
			}
			return fmt.Errorf("verify captcha: %w", err)
		}
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"username": body.Username}).Info("login accepted")
	}
	return nil
}
