package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/sbv-scaffold/internal/core/domain/result"
	infraredis "github.com/avatarctic/sbv-scaffold/internal/infrastructure/redis"
)

const msgStoreUnavailable = "缓存服务不可用"

// errorHandler renders every error as a result envelope whose code is the HTTP status.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := result.DefaultErrorMsg
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			msg = m
		case nil:
			msg = http.StatusText(code)
		default:
			msg = fmt.Sprint(m)
		}
	} else if s.logger != nil {
		s.logger.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, result.New(code, msg, nil))
	}
	if writeErr != nil && s.logger != nil {
		s.logger.WithError(writeErr).Error("failed to write error response")
	}
}

// storeError maps cache failures to HTTP errors; anything else becomes a 500.
func (s *Server) storeError(c echo.Context, err error, action string) error {
	if errors.Is(err, infraredis.ErrStoreUnavailable) {
		if s.logger != nil {
			s.logger.WithError(err).WithField("action", action).Warn("cache store unavailable")
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, msgStoreUnavailable)
	}
	if s.logger != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{"action": action, "path": c.Path()}).Error("request failed")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, result.DefaultErrorMsg)
}
