package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/sbv-scaffold/internal/core/domain/result"
	infraredis "github.com/avatarctic/sbv-scaffold/internal/infrastructure/redis"
)

const (
	msgKeyRequired  = "缓存键不能为空"
	msgKeyNotFound  = "缓存不存在"
	msgKeyWrongType = "缓存类型不是字符串"
)

func (s *Server) listCacheKeys(c echo.Context) error {
	keys, err := s.monitorSvc.ListKeys(c.Request().Context(), c.QueryParam("pattern"))
	if err != nil {
		return s.storeError(c, err, "list cache keys")
	}
	return c.JSON(http.StatusOK, result.SuccessData(result.DefaultSuccessMsg, keys))
}

func (s *Server) getCacheValue(c echo.Context) error {
	key := strings.TrimSpace(c.QueryParam("key"))
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgKeyRequired)
	}
	value, ok, err := s.monitorSvc.GetValue(c.Request().Context(), key)
	switch {
	case err != nil && infraredis.IsTypeMismatch(err):
		return c.JSON(http.StatusOK, result.ErrorMsg(msgKeyWrongType).Set("cacheKey", key))
	case err != nil && errors.Is(err, infraredis.ErrCodec):
		return c.JSON(http.StatusOK, result.ErrorMsg(err.Error()).Set("cacheKey", key))
	case err != nil:
		return s.storeError(c, err, "get cache value")
	case !ok:
		return c.JSON(http.StatusOK, result.ErrorMsg(msgKeyNotFound).Set("cacheKey", key))
	}
	return c.JSON(http.StatusOK, result.SuccessData(result.DefaultSuccessMsg, value).Set("cacheKey", key))
}

func (s *Server) deleteCacheKey(c echo.Context) error {
	key := strings.TrimSpace(c.QueryParam("key"))
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgKeyRequired)
	}
	removed, err := s.monitorSvc.DeleteKey(c.Request().Context(), key)
	if err != nil {
		return s.storeError(c, err, "delete cache key")
	}
	return c.JSON(http.StatusOK, result.SuccessData(result.DefaultSuccessMsg, removed))
}

func (s *Server) clearCache(c echo.Context) error {
	n, err := s.monitorSvc.Clear(c.Request().Context(), c.QueryParam("pattern"))
	if err != nil {
		return s.storeError(c, err, "clear cache")
	}
	return c.JSON(http.StatusOK, result.SuccessData(result.DefaultSuccessMsg, n))
}
