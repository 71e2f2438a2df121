// Package server exposes the quantity engine as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sambeau/unitz/config"
	"github.com/sambeau/unitz/internal/logger"
	"github.com/sambeau/unitz/internal/ratelimit"
	"github.com/sambeau/unitz/pkg/unitz"
)

// Server is a unitz API server instance.
type Server struct {
	config  *config.Config
	reg     *unitz.Registry
	log     *logger.Logger
	mux     *http.ServeMux
	limiter *ratelimit.Limiter
	maxBody int64
	server  *http.Server
}

// New creates a server answering queries against reg.
func New(cfg *config.Config, reg *unitz.Registry, log *logger.Logger) (*Server, error) {
	maxBody, err := config.ParseSize(cfg.Server.MaxBody)
	if err != nil {
		return nil, fmt.Errorf("server.max_body: %w", err)
	}
	if maxBody == 0 {
		maxBody = 64 * 1024
	}

	s := &Server{
		config:  cfg,
		reg:     reg,
		log:     logger.OrDiscard(log).Component("server"),
		mux:     http.NewServeMux(),
		maxBody: maxBody,
	}
	if rl := cfg.Server.RateLimit; rl.Enabled {
		s.limiter = ratelimit.New(rl.Requests, rl.Window)
	}

	s.setupRoutes()
	return s, nil
}

// setupRoutes registers the API endpoints.
func (s *Server) setupRoutes() {
	for path, op := range operations {
		s.mux.Handle("POST /api/"+path, s.operation(op))
	}
	s.mux.HandleFunc("GET /api/classes", s.handleClasses)
	s.mux.HandleFunc("GET /api/units", s.handleUnits)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

// Handler returns the full middleware chain, outermost first: proxy
// headers, request logging, compression, security headers, CORS, rate
// limiting and the API routes.
func (s *Server) Handler() http.Handler {
	cfg := s.config.Server
	var handler http.Handler = s.mux
	handler = newRateLimitHandler(handler, s.limiter, cfg.RateLimit.Window)
	handler = newCORSHandler(handler, cfg.CORS)
	handler = newSecurityHeaders(handler, cfg.Security)
	handler = newCompressionHandler(handler, cfg.Compression)
	if !s.config.Logging.Quiet {
		handler = newRequestLogger(handler, s.log)
	}
	handler = newProxyAware(handler, cfg.Proxy)
	return handler
}

// Run starts the server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	ln, err := net.Listen("tcp", s.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("listening: %w", err)
	}

	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting unitz API", "addr", "http://"+ln.Addr().String())
		errCh <- s.server.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutting down gracefully")
		timeout := s.config.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Close releases background resources when Run is not used.
func (s *Server) Close() {
	s.limiter.Stop()
}
