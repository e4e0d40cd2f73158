package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/config"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/db"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/logger"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/middleware"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/services"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/token"
	"github.com/kenoreyes238/keno-reyes-final-project-back/migrations"
)

func main() {
	log := logger.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	// ======================
	// INFRA
	// ======================
	conn, err := db.Connect(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer conn.Close()

	if err := migrations.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	pool := db.NewPool(conn, cfg.AcquireTimeout)

	// ======================
	// SERVICES
	// ======================
	creds := services.NewCredentialService()
	tokens := token.NewService(cfg.JWTKey, cfg.TokenTTL)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestSession(pool))

	registerRoutes(e, creds, tokens, log)

	// ======================
	// SERVER
	// ======================
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// registerRoutes is the single authoritative route table. Register and login
// sit before the auth gate; everything after it runs through the gate, which
// attaches the identity when the bearer token checks out but never halts the
// pipeline.
func registerRoutes(e *echo.Echo, creds *services.CredentialService, tokens *token.Service, log *logger.Logger) {
	e.POST("/register", registerHandler(creds, tokens))
	e.POST("/login", loginHandler(creds, tokens))

	gated := e.Group("", middleware.AuthGate(tokens, log))
	gated.POST("/logout", logoutHandler())
	gated.GET("/products", listProductsHandler())
	gated.POST("/addProduct", addProductHandler())
	gated.PUT("/editProduct/:id", editProductHandler())
	gated.DELETE("/deleteProduct/:id", deleteProductHandler())
}
