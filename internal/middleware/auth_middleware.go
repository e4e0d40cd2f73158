package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/logger"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/token"
)

const (
	// AuthClaimsKey holds the decoded *token.Claims for an authenticated
	// request. Handlers must not assume it is set: the gate below never
	// halts the pipeline, even without a valid identity.
	AuthClaimsKey = "auth_claims"

	// AuthErrorKey holds the token verification error (token.ErrTokenInvalid
	// or token.ErrTokenExpired) when the bearer token failed validation.
	// Route-layer code can inspect it instead of listening for an
	// out-of-band event.
	AuthErrorKey = "auth_error"
)

// AuthGate validates the Authorization bearer token and attaches the decoded
// claims to the context. A missing header or a wrong scheme writes an error
// payload but does not stop the pipeline, and an invalid or expired token is
// recorded on the context rather than failing the request. Only unexpected
// verification errors are fatal.
func AuthGate(tokens *token.Service, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				_ = c.JSON(http.StatusOK, "Invalid authorization, no authorization headers")
				return next(c)
			}

			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				_ = c.JSON(http.StatusOK, "Invalid authorization, invalid authorization scheme")
				if len(parts) != 2 {
					return next(c)
				}
				// A two-part header with the wrong scheme still gets its
				// credential verified, matching the observed behavior.
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrTokenInvalid) || errors.Is(err, token.ErrTokenExpired) {
					c.Set(AuthErrorKey, err)
					LoggerFromContext(c, log).Warn().
						Err(err).
						Str("path", c.Path()).
						Msg("bearer token rejected")
					return next(c)
				}
				return err
			}

			c.Set(AuthClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the authenticated identity, or nil when none was
// attached.
func ClaimsFromContext(c echo.Context) *token.Claims {
	if claims, ok := c.Get(AuthClaimsKey).(*token.Claims); ok {
		return claims
	}
	return nil
}

// AuthErrorFromContext returns the recorded token validation error, or nil.
func AuthErrorFromContext(c echo.Context) error {
	if err, ok := c.Get(AuthErrorKey).(error); ok {
		return err
	}
	return nil
}
