package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, filepath.Join("database", "task_management.db"), cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, time.Hour, cfg.SessionTTL)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "other.db")
	t.Setenv("TRACKER_PEPPER_FILE", "/tmp/pepper")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("PORT", "8080")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "5s")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15m")

	cfg := LoadConfig()

	require.Equal(t, filepath.Join("database", "other.db"), cfg.DatabaseFile)
	require.Equal(t, "/tmp/pepper", cfg.PepperFile)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 5*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SESSION_TTL", "soon")

	cfg := LoadConfig()

	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestGetEnvDurationOrDefault_IntegerMinutes(t *testing.T) {
	t.Setenv("SESSION_TTL", "90")

	cfg := LoadConfig()
	require.Equal(t, 90*time.Minute, cfg.SessionTTL)
}
