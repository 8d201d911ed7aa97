// Package metricshttp serves the Prometheus exposition endpoint for
// deployments that enable metrics in config.
package metricshttp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	errspkg "github.com/jobgrid/jobgrid/internal/errors"
	"github.com/jobgrid/jobgrid/internal/logging"
)

// Server exposes metrics on /metrics until shut down.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// Start listens on the given port and serves the gatherer's metrics in the
// background. Port 0 picks a free port; a nil gatherer falls back to the
// Prometheus default.
func Start(port int, gatherer prometheus.Gatherer, log logging.ServiceLogger) (*Server, error) {
	if log == nil {
		return nil, errspkg.ErrLoggerRequired
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("metrics: listen on port %d: %w", port, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", err, logging.LogFields{"addr": ln.Addr().String()})
		}
	}()

	log.Info("serving metrics", logging.LogFields{"addr": ln.Addr().String()})
	return &Server{srv: srv, ln: ln}, nil
}

// Addr returns the bound listen address, useful when port 0 was requested.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops the server, waiting for in-flight scrapes to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
