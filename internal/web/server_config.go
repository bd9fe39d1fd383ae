package web

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvListenAddr = "MATHEXAM_LISTEN"
	EnvPort       = "PORT"
	EnvDevMode    = "MATHEXAM_DEV"
	EnvStaticDir  = "MATHEXAM_STATIC_DIR"
	EnvPublicURL  = "MATHEXAM_PUBLIC_URL"

	DefaultListenAddr = ":5000"
	DefaultStaticDir  = "static"
)

// ServerConfig contains settings for running the HTTP server.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
	// StaticDir is checked before the embedded assets for /static/ requests.
	StaticDir string
	// PublicURL is the base used for links encoded in QR codes. When empty
	// it is derived from each request.
	PublicURL string
}

// DefaultServerConfigFromEnv reads the server settings from the environment.
// MATHEXAM_LISTEN wins over PORT; PORT is the bare port number used by most
// hosting platforms.
func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		if port := strings.TrimSpace(os.Getenv(EnvPort)); port != "" {
			if _, err := strconv.ParseUint(port, 10, 16); err != nil {
				return ServerConfig{}, fmt.Errorf("%s must be a port number (got %q): %w", EnvPort, port, err)
			}
			listenAddr = ":" + port
		}
	}
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	staticDir := os.Getenv(EnvStaticDir)
	if staticDir == "" {
		staticDir = DefaultStaticDir
	}

	publicURL := strings.TrimRight(os.Getenv(EnvPublicURL), "/")

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode, StaticDir: staticDir, PublicURL: publicURL}, nil
}
