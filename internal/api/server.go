// Package api exposes the prediction service over HTTP: an informational
// page on GET /, the prediction endpoint on POST /predict, and the
// operational surfaces (/health, /model/info, /metrics).
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"persona-api/internal/cfg"
	"persona-api/internal/metrics"
	"persona-api/internal/predict"
)

// Server serves the prediction API.
type Server struct {
	svc     *predict.Service
	metrics *metrics.Metrics
	server  *http.Server
}

// New builds the HTTP server around the prediction service. The metrics
// argument may be nil (handy in tests); the /metrics endpoint then serves
// the default registry unchanged.
func New(svc *predict.Service, m *metrics.Metrics, settings cfg.Settings) *Server {
	s := &Server{svc: svc, metrics: m}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/predict", s.handlePredict)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/model/info", s.handleModelInfo)
	mux.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", settings.Port),
		Handler:           s.instrument(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       settings.ReadTimeout,
		WriteTimeout:      settings.WriteTimeout,
		IdleTimeout:       settings.IdleTimeout,
	}
	return s
}

// Handler returns the root handler, for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("starting prediction server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// statusRecorder captures the response code for request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if s.metrics != nil {
			statusClass := fmt.Sprintf("%dxx", rec.status/100)
			s.metrics.RequestsTotal.WithLabelValues(r.URL.Path, statusClass).Inc()
			s.metrics.RequestLatency.Observe(time.Since(start).Seconds())
		}
	})
}
