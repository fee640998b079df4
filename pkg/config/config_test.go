package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory holding a bare .env so
// Load never picks up the repository's own environment file.
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(""), 0o600))

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, EnvDevelopment, cfg.Env)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, 300*time.Millisecond, cfg.UI.SearchDebounce)
	require.Equal(t, 30*time.Second, cfg.Announcements.PollInterval)
	require.Equal(t, ".eduplatform", cfg.State.Dir)
	require.True(t, cfg.Exports.Enabled)
}

func TestProductionDefaultsToDeployedBackend(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV", EnvProduction)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://eduplatform-backend-k9fr.onrender.com", cfg.API.BaseURL)
}

func TestExplicitBaseURLWinsAndTrailingSlashIsTrimmed(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV", EnvProduction)
	t.Setenv("API_BASE_URL", "https://staging.example.test/api/")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://staging.example.test/api", cfg.API.BaseURL)
}

func TestEnvironmentOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "8080")
	t.Setenv("UNREAD_POLL_INTERVAL", "5s")
	t.Setenv("SEARCH_DEBOUNCE", "150ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 5*time.Second, cfg.Announcements.PollInterval)
	require.Equal(t, 150*time.Millisecond, cfg.UI.SearchDebounce)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	chdirTemp(t)
	t.Setenv("UNREAD_POLL_INTERVAL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, cfg.Announcements.PollInterval)
}
