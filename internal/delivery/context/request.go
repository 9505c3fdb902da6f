// Package context carries per-request values between echo handlers, the
// worker, and the usecases they call: the request id, a logger already tagged
// with it, and the caller's device id.
package context

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// ContextKey keys values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	HeaderXRequestID = echo.HeaderXRequestID
)

// SetRequestID records the request id on both the echo.Context and the
// request's context.Context, so usecases and publishers see the same value.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
	req := c.Request()
	c.SetRequest(req.WithContext(WithRequestID(req.Context(), requestID)))
}

// GetRequestID returns the id set by the request id middleware, or "" when
// the route runs without it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// Detach keeps ctx's values but drops its cancellation, for work such as a
// notification fanout that must outlive the request that started it. A
// positive timeout bounds the detached context.
func Detach(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if timeout <= 0 {
		return detached, func() {}
	}

	return context.WithTimeout(detached, timeout)
}
