package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FINTWIN_API_URL", "")
	t.Setenv("FINTWIN_LOG_LEVEL", "")
	t.Setenv("FINTWIN_LOG_FILE", "")

	cfg := Load()

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.LogFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FINTWIN_API_URL", "http://twin.internal:9000")
	t.Setenv("FINTWIN_LOG_LEVEL", "debug")
	t.Setenv("FINTWIN_LOG_FILE", "/tmp/twin.log")

	cfg := Load()

	assert.Equal(t, "http://twin.internal:9000", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/twin.log", cfg.LogFile)
}
