package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vornastek/ecsphys/scheduler"
)

// Server exposes a scheduler's Profiler as a Prometheus /metrics
// endpoint, alongside a /health endpoint for basic liveness checks.
type Server struct {
	httpServer *http.Server
	registry   *prometheus.Registry
}

// NewServer builds a Server bound to addr, registering prof (which
// implements prometheus.Collector) against a fresh registry rather than
// prometheus.DefaultRegisterer, so multiple Servers in the same process
// (e.g. under test) never collide on metric names.
func NewServer(addr string, prof *scheduler.Profiler) *Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prof)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: mux},
		registry:   reg,
	}
}

// Handler returns the Server's underlying http.Handler, for tests that
// exercise /metrics and /health without binding a real listener.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks serving metrics until the server errors or is
// shut down; http.ErrServerClosed is swallowed, matching net/http's own
// documented shutdown contract.
func (s *Server) ListenAndServe() error {
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
