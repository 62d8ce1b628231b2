package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/sbv-scaffold/internal/core/domain/auth"
	"github.com/avatarctic/sbv-scaffold/internal/core/ports"
)

// Ambiguous characters (0/O, 1/I/L) are left out.
const captchaAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// CaptchaConfig groups captcha settings.
type CaptchaConfig struct {
	Enabled   bool
	TTL       time.Duration
	Length    int
	KeyPrefix string
}

// CaptchaService stores single-use codes under "<prefix>:<uuid>" with a TTL.
type CaptchaService struct {
	cache     ports.ObjectCache[string]
	enabled   bool
	ttl       time.Duration
	length    int
	keyPrefix string
	logger    *logrus.Logger
}

var _ ports.CaptchaService = (*CaptchaService)(nil)

func NewCaptchaService(cache ports.ObjectCache[string], cfg *CaptchaConfig, logger *logrus.Logger) *CaptchaService {
	s := &CaptchaService{cache: cache, enabled: true, ttl: 2 * time.Minute, length: 4, keyPrefix: "captcha_codes", logger: logger}
	if cfg != nil {
		s.enabled = cfg.Enabled
		if cfg.TTL > 0 {
			s.ttl = cfg.TTL
		}
		if cfg.Length > 0 {
			s.length = cfg.Length
		}
		if cfg.KeyPrefix != "" {
			s.keyPrefix = cfg.KeyPrefix
		}
	}
	return s
}

func (s *CaptchaService) Enabled() bool { return s.enabled }

func (s *CaptchaService) key(id string) string {
	return s.keyPrefix + ":" + id
}

func (s *CaptchaService) Generate(ctx context.Context) (*auth.Captcha, error) {
	if !s.enabled {
		return &auth.Captcha{Enabled: false}, nil
	}
	code, err := randomCode(s.length)
	if err != nil {
		return nil, fmt.Errorf("generate captcha code: %w", err)
	}
	id := uuid.NewString()
	if err := s.cache.SetObjectTTL(ctx, s.key(id), code, s.ttl); err != nil {
		return nil, fmt.Errorf("store captcha code: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"uuid": id, "ttl": s.ttl.String()}).Debug("captcha issued")
	}
	return &auth.Captcha{UUID: id, Code: code, Enabled: true}, nil
}

// Verify deletes the stored code before comparing, so every code is checked at most once.
func (s *CaptchaService) Verify(ctx context.Context, id, code string) error {
	if !s.enabled {
		return nil
	}
	key := s.key(id)
	stored, ok, err := s.cache.GetObject(ctx, key)
	if err != nil {
		return fmt.Errorf("read captcha code: %w", err)
	}
	if _, err := s.cache.DeleteObject(ctx, key); err != nil && s.logger != nil {
		s.logger.WithError(err).WithField("uuid", id).Warn("failed to delete captcha code")
	}
	if !ok {
		return auth.ErrCaptchaExpired
	}
	if !strings.EqualFold(strings.TrimSpace(code), stored) {
		return auth.ErrCaptchaMismatch
	}
	return nil
}

func randomCode(n int) (string, error) {
	max := big.NewInt(int64(len(captchaAlphabet)))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(captchaAlphabet[idx.Int64()])
	}
	return b.String(), nil
}
