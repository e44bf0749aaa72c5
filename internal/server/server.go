// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/history"
)

// Version is reported by the /version endpoint.
const Version = "1.0.0"

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	analyzer   *analyzer.Analyzer
	store      history.Store
	registry   *classify.Registry
	log        *zap.Logger
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance.
func New(cfg Config, a *analyzer.Analyzer, store history.Store, reg *classify.Registry, log *zap.Logger) *Server {
	s := &Server{
		analyzer: a,
		store:    store,
		registry: reg,
		log:      log,
	}

	mux := http.NewServeMux()
	mux.Handle("/predict", requireMethod(http.MethodPost, http.HandlerFunc(s.handlePredict)))
	mux.Handle("/analyze", requireMethod(http.MethodPost, http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("/history", requireMethod(http.MethodGet, http.HandlerFunc(s.handleHistory)))
	mux.Handle("/health", requireMethod(http.MethodGet, http.HandlerFunc(s.handleHealth)))
	mux.Handle("/version", requireMethod(http.MethodGet, http.HandlerFunc(s.handleVersion)))
	mux.Handle("/metrics", requireMethod(http.MethodGet, promhttp.Handler()))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// requireMethod rejects requests whose method does not match, mirroring the
// method-qualified ServeMux patterns ("POST /predict") that require Go 1.22+.
func requireMethod(method string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler exposes the configured handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until the listener stops.
func (s *Server) Start() error {
	s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// withCORS adds permissive CORS headers so browser and mobile clients can
// call the API directly.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET,PUT,POST,DELETE,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs one line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
