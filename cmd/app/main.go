package main

import (
	"tripseat/config"
	"tripseat/di"
	"tripseat/helper"
	"tripseat/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Tripseat API
// @version 1.0
// @description Seat booking with deposit and remaining-balance payments for scheduled trips.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
