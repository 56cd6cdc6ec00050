package main

import (
	"sekor-bkc/pkg/config"
	"sekor-bkc/pkg/logger"
	app "sekor-bkc/services/api/internal/app"
)

// @title           Sekor BKC API
// @version         1.0
// @description     Bilingual content publishing backend for stories, articles, authors and media

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name accessToken
// @description Access token issued by /auth/login as an httpOnly cookie.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.NewWithConfig(logger.Config{
		Level:       cfg.LogLevel,
		Pretty:      cfg.LogPretty,
		ServiceName: "sekor-api",
	})

	if cfg.JWTSecret == "" || (cfg.IsProduction() && cfg.JWTSecret == config.DefaultJWTSecret) {
		log.Error("JWT_SECRET must be set in environment variables")
		panic("JWT_SECRET must be set in environment variables")
	}
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn("Using the default JWT secret; set JWT_SECRET outside development")
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
