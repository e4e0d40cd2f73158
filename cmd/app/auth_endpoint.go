package main

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/db"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/middleware"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/repository"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/services"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/token"
)

const jwtCookieName = "jwtToken"

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerHandler stores the hashed password and hands back a signed token
// right away, so a fresh account needs no separate login. Failures, including
// a duplicate email, come back as {err, success:false} with HTTP 200.
func registerHandler(creds *services.CredentialService, tokens *token.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromContext(c)
		ctx := c.Request().Context()

		var req credentialsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusOK, echo.Map{"err": "invalid request", "success": false})
		}

		hash, err := creds.Hash(req.Password)
		if err != nil {
			return c.JSON(http.StatusOK, echo.Map{"err": err.Error(), "success": false})
		}

		users := repository.NewUserRepository(sess)
		id, err := users.Create(ctx, req.Email, hash)
		if err != nil {
			msg := err.Error()
			if db.IsUniqueViolation(err) {
				msg = "email already registered"
			}
			return c.JSON(http.StatusOK, echo.Map{"err": msg, "success": false})
		}

		signed, err := tokens.Issue(id, req.Email)
		if err != nil {
			return c.JSON(http.StatusOK, echo.Map{"err": err.Error(), "success": false})
		}

		return c.JSON(http.StatusOK, echo.Map{"jwt": signed, "success": true})
	}
}

// loginHandler verifies the password against the stored digest, issues a
// token and sets it as an http-only cookie. Exactly one of email-not-found,
// password-wrong or success is returned.
func loginHandler(creds *services.CredentialService, tokens *token.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromContext(c)
		ctx := c.Request().Context()

		var req credentialsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusOK, echo.Map{"error": "invalid request", "success": false})
		}

		users := repository.NewUserRepository(sess)
		user, err := users.GetByEmail(ctx, req.Email)
		if err != nil {
			if err == repository.ErrUserNotFound {
				return c.JSON(http.StatusOK, echo.Map{"error": "Email not found", "success": false})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error", "success": false})
		}

		ok, err := creds.Verify(req.Password, user.PasswordHash)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error", "success": false})
		}
		if !ok {
			return c.JSON(http.StatusOK, echo.Map{"error": "Password is wrong", "success": false})
		}

		signed, err := tokens.Issue(user.ID, user.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error", "success": false})
		}

		c.SetCookie(&http.Cookie{
			Name:     jwtCookieName,
			Value:    signed,
			Path:     "/",
			HttpOnly: true,
		})
		return c.JSON(http.StatusOK, echo.Map{"jwt": signed, "success": true})
	}
}

// logoutHandler clears the bearer cookie. Tokens stay valid until they
// expire; there is no server-side revocation.
func logoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     jwtCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
		})
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}
