// Package context carries request-scoped values between the echo layer and
// the usecases: the request id, the request logger and the session subject.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response and accepted from callers.
const HeaderXRequestID = echo.HeaderXRequestID

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

// echo.Context stores values by string.
const echoRequestIDKey = "request_id"

// SetRequestID records the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the id set by the request id middleware. Handlers
// reached without it get a fresh id so responses always carry one.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(echoRequestIDKey).(string); id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestID attaches the request id to ctx for usecases and publishers.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger attaches the request logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
