// Package predict turns a normalized feature vector into a human-readable
// label using the loaded model bundle. One inference attempt per request,
// no retries: failures surface as typed errors for the HTTP layer to map.
package predict

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"persona-api/internal/model"
)

// ErrUnavailable is returned when prediction is requested while the model
// artifacts never loaded. Its text is part of the API's error contract.
var ErrUnavailable = errors.New("Prediction service unavailable: Model not loaded on server.")

// InternalError wraps any fault raised during inference or label decoding.
// The underlying cause text is a best-effort diagnostic, not a stable
// contract.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("An internal server error occurred during prediction: %v", e.Cause)
}

func (e *InternalError) Unwrap() error { return e.Cause }

// MetricsSink receives prediction telemetry. A nil sink disables tracking.
type MetricsSink interface {
	PredictionsInc()
	PredictionFailuresInc()
	PredictionLatencyObserve(float64)
}

// Service performs inference against the immutable model bundle.
type Service struct {
	bundle  *model.Bundle
	metrics MetricsSink
}

// New creates a prediction service. The bundle may be unavailable; every
// call then fails with ErrUnavailable.
func New(bundle *model.Bundle, metrics MetricsSink) *Service {
	return &Service{bundle: bundle, metrics: metrics}
}

// Available reports whether the underlying bundle can serve predictions.
func (s *Service) Available() bool {
	return s != nil && s.bundle.Available()
}

// Classes returns the label set the encoder knows, nil when unavailable.
func (s *Service) Classes() []string {
	if s == nil {
		return nil
	}
	return s.bundle.Classes()
}

// Predict runs a single inference on a normalized feature vector and maps
// the encoded class back to its label.
func (s *Service) Predict(ctx context.Context, features []float64) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return "", &InternalError{Cause: err}
	}

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.PredictionLatencyObserve(time.Since(start).Seconds())
		}
	}()

	idx, err := s.bundle.Classifier().Predict(features)
	if err != nil {
		s.recordFailure()
		return "", &InternalError{Cause: err}
	}

	label, err := s.bundle.Encoder().InverseTransform(idx)
	if err != nil {
		s.recordFailure()
		return "", &InternalError{Cause: err}
	}

	if s.metrics != nil {
		s.metrics.PredictionsInc()
	}
	log.Debug().Floats64("features", features).Str("label", label).Msg("prediction served")
	return label, nil
}

func (s *Service) recordFailure() {
	if s.metrics != nil {
		s.metrics.PredictionFailuresInc()
	}
}
