package middleware

import (
	"log/slog"
	"time"

	"traiteur/config"
	deliverycontext "traiteur/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware adds a debug record with the route template and the
// authenticated caller. The access log itself comes from slog-echo.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.Duration("handler_latency", time.Since(start)),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if caller, ok := deliverycontext.GetCaller(c); ok {
		fields = append(fields,
			slog.String("caller_id", caller.IdentityID),
			slog.String("caller_role", caller.Role.String()),
		)
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	// The request logger already carries request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), slog.LevelDebug, "HTTP request detail", fields...)
}
