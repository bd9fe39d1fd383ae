package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mathexam/mathexam/internal/logging"
)

type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

type HTTPServer struct {
	Addr      string
	DevMode   bool
	StaticDir string

	// Handler serves all requests. When nil, NewDefaultMux is used with Deps.
	Handler http.Handler
	Deps    Deps
	Logger  logging.Logger

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
	done   chan struct{}
}

func NewHTTPServer(cfg ServerConfig) *HTTPServer {
	return &HTTPServer{
		Addr:      cfg.ListenAddr,
		DevMode:   cfg.DevMode,
		StaticDir: cfg.StaticDir,
		Deps:      Deps{PublicURL: cfg.PublicURL},
	}
}

// Start listens on Addr and serves in the background until ctx is done or
// Stop is called.
func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.Addr
	if addr == "" {
		addr = DefaultListenAddr
	}
	logger := s.Logger
	if logger == nil {
		logger = logging.NoopLogger{}
	}

	handler := s.Handler
	if handler == nil {
		deps := s.Deps
		if deps.Logger == nil {
			deps.Logger = logger
		}
		handler = NewDefaultMux(s.StaticDir, deps)
	}
	if s.DevMode {
		handler = WithDevCORS(handler)
	}
	handler = WithRequestLog(logger, handler)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.done = make(chan struct{})

	srv := s.srv
	done := s.done
	go func() {
		select {
		case <-ctx.Done():
			_ = s.Stop()
		case <-done:
		}
	}()

	go func() {
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		logger.Errorf("web", "serve %s: %v", addr, err)
	}()

	logger.Infof("web", "listening on %s", ln.Addr())
	return nil
}

// ListenAddr returns the bound address once started, or "" before.
func (s *HTTPServer) ListenAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop shuts the server down, waiting up to 5 seconds for open requests.
// It is safe to call more than once.
func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	done := s.done
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if done != nil {
		close(done)
	}
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
