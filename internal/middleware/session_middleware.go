package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/db"
)

// SessionKey is the echo.Context key under which the request-bound database
// session is stored.
const SessionKey = "db_session"

// sessionSettings are applied to every checked-out session before the
// request sees it. The time zone is pinned to a fixed offset; Postgres
// rejects out-of-range values unconditionally, so no strictness toggle is
// needed on top.
var sessionSettings = []string{
	`SET TIME ZONE '-08:00'`,
}

// SessionPool yields one database session per request. Implemented by
// *db.Pool.
type SessionPool interface {
	AcquireSession(ctx context.Context) (*db.Session, error)
}

// RequestSession acquires one session for the lifetime of the request,
// applies the session settings, exposes the session to downstream handlers
// via the context, and releases it on every exit path. Downstream code never
// sees a session unless acquisition and settings both succeeded.
func RequestSession(pool SessionPool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			sess, err := pool.AcquireSession(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "could not acquire database session").SetInternal(err)
			}
			defer sess.Release()

			for _, stmt := range sessionSettings {
				if _, err := sess.ExecContext(ctx, stmt); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "could not prepare database session").SetInternal(err)
				}
			}

			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the session bound to this request, or nil when
// the session middleware did not run.
func SessionFromContext(c echo.Context) *db.Session {
	if sess, ok := c.Get(SessionKey).(*db.Session); ok {
		return sess
	}
	return nil
}
