package web

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvListenAddr, EnvPort, EnvDevMode, EnvStaticDir, EnvPublicURL} {
		t.Setenv(key, "")
	}
}

func TestDefaultServerConfigFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := DefaultServerConfigFromEnv(DefaultListenAddr)
	require.NoError(t, err)
	require.Equal(t, ServerConfig{ListenAddr: ":5000", StaticDir: "static"}, cfg)
}

func TestDefaultServerConfigFromEnvPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "8081")

	cfg, err := DefaultServerConfigFromEnv(DefaultListenAddr)
	require.NoError(t, err)
	require.Equal(t, ":8081", cfg.ListenAddr)

	t.Setenv(EnvListenAddr, "127.0.0.1:9000")
	cfg, err = DefaultServerConfigFromEnv(DefaultListenAddr)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
}

func TestDefaultServerConfigFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDevMode, "true")
	t.Setenv(EnvStaticDir, "/srv/static")
	t.Setenv(EnvPublicURL, "https://quiz.example.org/")

	cfg, err := DefaultServerConfigFromEnv(DefaultListenAddr)
	require.NoError(t, err)
	require.True(t, cfg.DevMode)
	require.Equal(t, "/srv/static", cfg.StaticDir)
	require.Equal(t, "https://quiz.example.org", cfg.PublicURL)
}

func TestDefaultServerConfigFromEnvErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDevMode, "maybe")
	_, err := DefaultServerConfigFromEnv(DefaultListenAddr)
	require.ErrorContains(t, err, EnvDevMode)

	clearEnv(t)
	t.Setenv(EnvPort, "http")
	_, err = DefaultServerConfigFromEnv(DefaultListenAddr)
	require.ErrorContains(t, err, EnvPort)
}
