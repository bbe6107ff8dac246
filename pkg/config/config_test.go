package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, "https://gamma-api.polymarket.com", cfg.GammaBaseURL)
	require.Equal(t, "https://data-api.polymarket.com", cfg.DataBaseURL)
	require.Empty(t, cfg.DefaultUserAddress)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polydash.yaml")
	data := []byte("listen: \":9000\"\ngamma_base_url: \"http://file-gamma/\"\ndefault_user_address: \"0xfile\"\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("POLYMARKET_GAMMA_API_BASE_URL", "http://env-gamma")
	t.Setenv("POLYMARKET_USER_ADDRESS", "0xenv")

	cfg, err := Load(path)
	require.NoError(t, err)

	// File applies where env is silent.
	require.Equal(t, ":9000", cfg.Listen)
	require.Equal(t, "debug", cfg.Log.Level)

	// Env wins over file.
	require.Equal(t, "http://env-gamma", cfg.GammaBaseURL)
	require.Equal(t, "0xenv", cfg.DefaultUserAddress)
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("POLYMARKET_DATA_API_BASE_URL", "http://data.example.com/")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://data.example.com", cfg.DataBaseURL)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
