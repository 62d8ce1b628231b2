package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"

	"github.com/go-redis/redis/v8"
)

var (
	// ErrStoreUnavailable marks connectivity and timeout failures talking to Redis.
	// The original client error stays in the chain.
	ErrStoreUnavailable = errors.New("cache store unavailable")
	// ErrCodec marks values that could not be encoded or decoded.
	ErrCodec = errors.New("cache codec error")
	// ErrInvalidTTL is returned when a write asks for a non-positive expiry.
	ErrInvalidTTL = errors.New("ttl must be positive")
)

var connectionErrorHints = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"connection pool timeout",
	"use of closed network connection",
}

// IsConnectionError reports whether err comes from the transport rather than from Redis itself.
func IsConnectionError(err error) bool {
	if err == nil || err == redis.Nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, redis.ErrClosed) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ECONNABORTED, syscall.ETIMEDOUT, syscall.EPIPE:
			return true
		}
	}
	msg := err.Error()
	for _, hint := range connectionErrorHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

// IsTypeMismatch reports whether Redis rejected an operation against a key holding another data shape.
func IsTypeMismatch(err error) bool {
	var rerr redis.Error
	if errors.As(err, &rerr) {
		return strings.HasPrefix(rerr.Error(), "WRONGTYPE")
	}
	return false
}

func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if IsConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}
