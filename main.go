package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/proyect-bank/backend/internal/auth"
	"github.com/proyect-bank/backend/internal/config"
	"github.com/proyect-bank/backend/internal/controllers"
	"github.com/proyect-bank/backend/internal/models"
	"github.com/proyect-bank/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()
	if cfg.Secret == "" {
		log.Fatal().Msg("the SECRET environment variable must be set")
	}

	// Create the data directory for the sqlite fallback
	if cfg.Database.Host == "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	db, err := models.Connect(cfg.Database)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := controllers.New(db, auth.New(cfg.Secret), cfg.Server.RateLimit, cfg.Server.RateInterval)

	r, teardown, err := router.New(cfg.Server, co)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
