// Package config provides application configuration loaded from environment variables.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the sqlite database location.
//
// When DB_HOST is set in the environment, the connection switches to
// PostgreSQL and the Path is ignored, see models.Connect.
type DatabaseConfig struct {
	Path string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	// Password is the shared password guarding all routes except
	// login, the liveness probe and metrics.
	Password string

	// SessionSecret authenticates the session cookie.
	SessionSecret string

	// UploadDir is the directory where document files are stored.
	UploadDir string
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", filepath.Join("data", "gorm.db")),
		},
		App: AppConfig{
			Password:      getEnv("ADMIN_PASSWORD", "changeme"),
			SessionSecret: getEnv("SESSION_SECRET", "insecure-dev-secret"),
			UploadDir:     getEnv("UPLOAD_DIR", filepath.Join("data", "uploads")),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
