// Package api exposes the spanning-tree pipeline over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/primviz/logging"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxConcurrent   int
	MaxBodyBytes    int64
	CORSOrigin      string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(addr string) ServerConfig {
	return ServerConfig{
		Addr:            addr,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    15 * time.Second,
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxConcurrent:   runtime.NumCPU() * 2,
		MaxBodyBytes:    4 << 20,
	}
}

// NewServer creates an HTTP server with all routes and middleware.
func NewServer(cfg ServerConfig, handlers *Handlers, logger hclog.Logger) *http.Server {
	logger = logging.OrNull(logger).Named("http")
	mux := http.NewServeMux()

	// Concurrency limiter.
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	sem := make(chan struct{}, cfg.MaxConcurrent)

	// Routes.
	mux.HandleFunc("POST /api/v1/mst", withMiddleware(handlers.HandleMST, sem, cfg, logger))
	mux.HandleFunc("GET /api/v1/export", withMiddleware(handlers.HandleExport, sem, cfg, logger))
	mux.HandleFunc("DELETE /api/v1/session", withMiddleware(handlers.HandleClear, sem, cfg, logger))
	mux.HandleFunc("GET /api/v1/health", withMiddleware(handlers.HandleHealth, sem, cfg, logger))

	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     logging.StdLogger(logger),
	}
}

// ListenAndServe starts the server and blocks until ctx is done or a
// SIGTERM/SIGINT arrives, then shuts down gracefully.
func ListenAndServe(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger hclog.Logger) error {
	logger = logging.OrNull(logger)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		if shutdownTimeout <= 0 {
			shutdownTimeout = 10 * time.Second
		}
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	}
}

// statusWriter remembers the status code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// withMiddleware wraps a handler with logging, recovery, security headers,
// and concurrency limiting.
func withMiddleware(handler http.HandlerFunc, sem chan struct{}, cfg ServerConfig, logger hclog.Logger) http.HandlerFunc {
	logger = logging.OrNull(logger)

	return func(w http.ResponseWriter, r *http.Request) {
		// Security headers.
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Cache-Control", "no-store")

		// CORS.
		if cfg.CORSOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigin)
		}

		// Concurrency limiter.
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
		default:
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusServiceUnavailable, "service_unavailable", "")
			return
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		// Recovery.
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic in handler", "path", r.URL.Path, "panic", rec)
				writeError(sw, http.StatusInternalServerError, "internal_error", "")
			}
		}()

		// Request timeout.
		timeout := cfg.RequestTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		start := time.Now()
		handler(sw, r.WithContext(ctx))
		logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", sw.status,
			"elapsed", time.Since(start).Round(time.Microsecond))
	}
}
