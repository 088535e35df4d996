// Package server exposes a session's accessible tree as MCP tools.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/a11y-bridge/internal/logging"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/session"
	"github.com/mj1618/a11y-bridge/internal/version"
)

// Server wraps the MCP server with the session and snapshot cache.
type Server struct {
	sess    *session.Session
	cache   *TreeCache
	metrics *Metrics
	logger  *slog.Logger
	mcp     *mcpserver.MCPServer

	// loopMu serialises every touch of the session; the bridge is not
	// safe for concurrent use.
	loopMu   sync.Mutex
	lastFlat []model.FlatElement
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithCacheTTL sets how long snapshots are reused. 0 disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Server) { s.cache = NewTreeCache(ttl) }
}

// WithMetrics records tool calls and serves /metrics over HTTP. Pass the
// same Metrics to the session as an observer to see bridge events.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

func New(sess *session.Session, opts ...Option) *Server {
	s := &Server{
		sess:   sess,
		cache:  NewTreeCache(0),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mcp = mcpserver.NewMCPServer(
		"a11y-bridge",
		version.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithResourceCapabilities(false, false),
		mcpserver.WithRecovery(),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer { return s.mcp }

// ServeStdio serves MCP on stdin and stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcp)
}

// Handler routes /mcp to the streamable HTTP transport, and /metrics when
// metrics are enabled.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/mcp", mcpserver.NewStreamableHTTPServer(s.mcp))
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return r
}

// ListenAndServe serves Handler on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (streamable-http)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
