package metrics

// Wrapper adapts Metrics to the narrow sink interface the prediction
// service consumes, keeping the predict package free of a prometheus
// dependency and avoiding an import cycle.
type Wrapper struct {
	m *Metrics
}

// NewWrapper wraps m. A nil receiver is safe and records nothing.
func NewWrapper(m *Metrics) *Wrapper {
	return &Wrapper{m: m}
}

func (w *Wrapper) PredictionsInc() {
	if w != nil && w.m != nil {
		w.m.Predictions.Inc()
	}
}

func (w *Wrapper) PredictionFailuresInc() {
	if w != nil && w.m != nil {
		w.m.PredictionFailures.Inc()
	}
}

func (w *Wrapper) PredictionLatencyObserve(v float64) {
	if w != nil && w.m != nil {
		w.m.PredictionLatency.Observe(v)
	}
}
