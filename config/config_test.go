package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AERA_CONFIG", "PORT", "AERA_DB_PATH", "GEMINI_API_KEY",
		"AERA_MODEL", "AERA_SEARCH_TIMEOUT", "AERA_LOCALES_DIR", "AERA_LANG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8090", cfg.Port)
	require.Equal(t, "aera.db", cfg.DBPath)
	require.Equal(t, "gemini-2.5-flash", cfg.Model)
	require.Equal(t, 30*time.Second, cfg.SearchTimeout)
	require.Equal(t, "en", cfg.Language)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("AERA_SEARCH_TIMEOUT", "5s")
	t.Setenv("AERA_LANG", "es")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "test-key", cfg.GeminiAPIKey)
	require.Equal(t, 5*time.Second, cfg.SearchTimeout)
	require.Equal(t, "es", cfg.Language)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "aera.yaml")
	file := "port: \"9100\"\nmodel: gemini-2.5-pro\nsearch_timeout: 45s\n"
	require.NoError(t, os.WriteFile(path, []byte(file), 0o644))
	t.Setenv("AERA_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9100", cfg.Port)
	require.Equal(t, "gemini-2.5-pro", cfg.Model)
	require.Equal(t, 45*time.Second, cfg.SearchTimeout)
}

func TestEnvWinsOverFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "aera.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9100\"\n"), 0o644))
	t.Setenv("AERA_CONFIG", path)
	t.Setenv("PORT", "9200")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9200", cfg.Port)
}

func TestLoadBadTimeout(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "aera.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search_timeout: soon\n"), 0o644))
	t.Setenv("AERA_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("AERA_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}
