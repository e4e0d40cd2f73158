package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/logger"
)

const (
	loggerKey     = "logger"
	traceIDHeader = "X-Trace-ID"
)

// RequestLogger attaches a request-scoped child logger carrying a trace id
// and writes one access-log line per request. The trace id is taken from the
// X-Trace-ID request header when present, otherwise generated, and is echoed
// back on the response.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(traceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			reqLog := log.Child("trace_id", traceID)
			c.Set(loggerKey, reqLog)
			c.Response().Header().Set(traceIDHeader, traceID)

			start := time.Now()
			err := next(c)

			reqLog.Info().
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Msg("request")

			return err
		}
	}
}

// LoggerFromContext returns the request-scoped logger, falling back to the
// given process logger when the logging middleware did not run.
func LoggerFromContext(c echo.Context, fallback *logger.Logger) *logger.Logger {
	if l, ok := c.Get(loggerKey).(*logger.Logger); ok {
		return l
	}
	return fallback
}
