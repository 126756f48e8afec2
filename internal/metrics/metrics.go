// Package metrics provides Prometheus metrics for the personality
// prediction service: request counts, prediction outcomes, inference
// latency, and model availability, exposed via the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// HTTP metrics
	RequestsTotal  *prometheus.CounterVec // Requests by route and status class
	RequestLatency prometheus.Histogram   // End-to-end request latency

	// Prediction metrics
	Predictions        prometheus.Counter   // Successful predictions served
	PredictionFailures prometheus.Counter   // Inference or decoding failures
	PredictionLatency  prometheus.Histogram // Inference latency in seconds
	UnavailableHits    prometheus.Counter   // /predict calls while model unloaded

	// Model metrics
	ModelLoaded prometheus.Gauge // 1 when both artifacts loaded, else 0
	ModelAge    prometheus.Gauge // Age of the classifier artifact in seconds
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates metrics with a custom registry (useful for tests,
// which must not collide on the global registry).
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route and status class",
		}, []string{"route", "status"}),
		RequestLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "http_request_latency_seconds",
			Help:    "End-to-end HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		Predictions: factory.NewCounter(prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total successful predictions served",
		}),
		PredictionFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "prediction_failures_total",
			Help: "Total prediction failures during inference or decoding",
		}),
		PredictionLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "prediction_latency_seconds",
			Help:    "Model inference latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}),
		UnavailableHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "prediction_unavailable_total",
			Help: "Total /predict calls rejected because the model never loaded",
		}),
		ModelLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name: "model_loaded",
			Help: "Whether both model artifacts are loaded (1) or not (0)",
		}),
		ModelAge: factory.NewGauge(prometheus.GaugeOpts{
			Name: "model_age_seconds",
			Help: "Age of the classifier artifact in seconds",
		}),
	}
}
