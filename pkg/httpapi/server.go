// Package httpapi exposes rule management and whole-text correction over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bastiangx/wordfix/pkg/autocorrect"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server serves the HTTP API for one Corrector.
type Server struct {
	corrector  *autocorrect.Corrector
	router     *mux.Router
	httpServer *http.Server
}

// NewServer creates a server; it does not listen until Serve is called.
func NewServer(c *autocorrect.Corrector, cfg config.ServerConfig) *Server {
	s := &Server{corrector: c}
	s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	s.router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	s.router.HandleFunc("/fix", s.fix).Methods(http.MethodPost)

	s.router.HandleFunc("/rules", s.listRules).Methods(http.MethodGet)
	s.router.HandleFunc("/rules/{word}", s.getRule).Methods(http.MethodGet)
	s.router.HandleFunc("/rules/{word}", s.putRule).Methods(http.MethodPut)
	s.router.HandleFunc("/rules/{word}", s.deleteRule).Methods(http.MethodDelete)

	s.router.HandleFunc("/exclusions", s.listExclusions).Methods(http.MethodGet)
	s.router.HandleFunc("/exclusions/{word}", s.putExclusion).Methods(http.MethodPut)
	s.router.HandleFunc("/exclusions/{word}", s.deleteExclusion).Methods(http.MethodDelete)

	s.router.Use(requestLogging)
}

// Serve listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on an existing listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Listening on http://%s", ln.Addr())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Shutting down HTTP server")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(sctx)
	})

	return g.Wait()
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}
