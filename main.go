package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mathexam/mathexam/internal/logging"
	"github.com/mathexam/mathexam/internal/web"
	"github.com/sirupsen/logrus"
)

const envStdioLog = "MATHEXAM_STDIO_LOG"

func main() {
	// A missing .env is the normal case outside development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}

	cfg, err := web.DefaultServerConfigFromEnv(web.DefaultListenAddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}

	listen := flag.String("listen", cfg.ListenAddr, "address to serve on; also configurable via "+web.EnvListenAddr+" or "+web.EnvPort)
	dev := flag.Bool("dev", cfg.DevMode, "enable permissive CORS for local development")
	staticDir := flag.String("static-dir", cfg.StaticDir, "directory checked before the embedded assets for /static/")
	publicURL := flag.String("public-url", cfg.PublicURL, "base URL encoded in quiz QR codes")
	debug := flag.Bool("debug", false, "enable debug logging")
	jsonLogs := flag.Bool("json-logs", false, "emit logs as JSON")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	logger := logging.New(os.Stderr, logging.Options{Debug: *debug, JSON: *jsonLogs})
	if !*debug {
		logger.SetLevel(logrus.InfoLevel)
	}

	cfg.ListenAddr = *listen
	cfg.DevMode = *dev
	cfg.StaticDir = *staticDir
	cfg.PublicURL = *publicURL

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewHTTPServer(cfg)
	server.Logger = logger
	if err := serve(ctx, server, logger); err != nil {
		logger.Errorf("main", "%v", err)
		os.Exit(1)
	}
}

// serve runs server until ctx is done.
func serve(ctx context.Context, server web.Server, logger logging.Logger) error {
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	<-ctx.Done()
	logger.Infof("main", "shutting down")
	if err := server.Stop(); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}
