package main

import (
	"vidtube/internal/app"
	"vidtube/pkg/config"
	"vidtube/pkg/logger"

	_ "vidtube/docs" // Swagger docs
)

// @title           VidTube API
// @version         1.0
// @description     Video sharing platform backend: videos, comments, likes, playlists, subscriptions and tweets
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	app.Run(cfg, log)
}
