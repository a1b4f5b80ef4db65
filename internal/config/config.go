// Package config loads the backend configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the backend.
type Config struct {
	Server   Server
	Database Database
	Secret   string
}

// Server holds the HTTP server configuration.
type Server struct {
	Port         string
	CORSOrigins  string
	EnablePprof  bool
	RateLimit    int
	RateInterval time.Duration
}

// Database holds the connection configuration for the relational store.
//
// When Host is set, the backend connects to postgresql. Otherwise it
// falls back to a local sqlite database at Path.
type Database struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	Path     string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is read first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: Server{
			Port:         getEnv("PORT", "3000"),
			CORSOrigins:  getEnv("CORS_ALLOW_ORIGINS", ""),
			EnablePprof:  getEnv("DEBUG_PPROF", "") == "true",
			RateLimit:    10,
			RateInterval: time.Minute,
		},
		Database: Database{
			Host:     getEnv("DB_HOST", ""),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "db_bank"),
			Port:     getEnv("DB_PORT", "5432"),
			Path:     getEnv("DB_PATH", "data/gorm.db"),
		},
		Secret: getEnv("SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
