package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/logger"
)

func TestRequestLoggerGeneratesTraceID(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger(logger.New("test")))
	e.GET("/test", func(c echo.Context) error {
		assert.NotNil(t, LoggerFromContext(c, nil))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRequestLoggerEchoesProvidedTraceID(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger(logger.New("test")))
	e.GET("/test", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}
