// Package config provides configuration management functionality.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	APIURL   string // base URL of the projection service
	LogLevel string // debug, info, warn, error
	LogFile  string // diagnostics log path; the TUI owns the terminal
}

// Load reads configuration from environment variables, after loading a
// .env file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:   getEnv("FINTWIN_API_URL", "http://localhost:8000"),
		LogLevel: getEnv("FINTWIN_LOG_LEVEL", "info"),
		LogFile:  getEnv("FINTWIN_LOG_FILE", defaultLogFile()),
	}
}

func defaultLogFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "fintwin", "fintwin.log")
	}
	return filepath.Join(os.TempDir(), "fintwin.log")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
