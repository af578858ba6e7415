// Package context carries request-scoped values between the HTTP layer and the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from clients and echoed on every response.
const HeaderXRequestID = echo.HeaderXRequestID

// key namespaces values stored on echo and standard contexts by this package.
type key string

const (
	requestIDKey key = "traiteur.request_id"
	loggerKey    key = "traiteur.logger"
	callerKey    key = "traiteur.caller"
)

// SetRequestID records the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(requestIDKey), requestID)
}

// GetRequestID returns the ID assigned by the request ID middleware. Responses
// written before that middleware ran get a fresh UUID so meta is never empty.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(requestIDKey)).(string)
	if id == "" {
		id = uuid.NewString()
	}

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext is empty outside an HTTP request, e.g. in the seeder.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault prefers the logger tagged with the request ID.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
