// Package model loads the serialized artifacts the external training
// pipeline produces: a decision-tree classifier and a label encoder. Both
// load at process start or neither serves; the bundle is immutable
// afterwards, so concurrent readers need no synchronization.
package model

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"persona-api/internal/feature"
)

// Bundle is the process-wide loaded model state: classifier plus label
// encoder, or unavailable as a unit. There is no partial-load state.
type Bundle struct {
	classifier *Classifier
	encoder    *LabelEncoder
	available  bool
}

// Load deserializes both artifacts. Any failure logs a diagnostic and
// returns an unavailable bundle rather than an error: the HTTP layer must
// still start so the informational page stays reachable and /predict can
// report a clear unavailable condition instead of the process dying.
func Load(modelPath, encoderPath string) *Bundle {
	classifier, err := LoadClassifier(modelPath)
	if err != nil {
		log.Warn().Err(err).Str("model_path", modelPath).
			Msg("classifier artifact unavailable, prediction disabled")
		return &Bundle{}
	}

	encoder, err := LoadLabelEncoder(encoderPath)
	if err != nil {
		log.Warn().Err(err).Str("encoder_path", encoderPath).
			Msg("label encoder artifact unavailable, prediction disabled")
		return &Bundle{}
	}

	b := &Bundle{classifier: classifier, encoder: encoder, available: true}

	// One inference on the imputation defaults catches artifacts that parse
	// but cannot serve (leaf labels outside the encoder's class set, for
	// example) before any traffic arrives.
	if err := b.sanityCheck(); err != nil {
		log.Warn().Err(err).Msg("artifact sanity check failed, prediction disabled")
		return &Bundle{}
	}

	log.Info().
		Str("model_path", modelPath).
		Str("encoder_path", encoderPath).
		Str("model_version", classifier.Version).
		Strs("classes", encoder.Classes).
		Msg("model artifacts loaded")
	return b
}

func (b *Bundle) sanityCheck() error {
	vec := make([]float64, feature.Count)
	for i := range vec {
		vec[i] = feature.Missing()
	}
	idx, err := b.classifier.Predict(vec)
	if err != nil {
		return fmt.Errorf("probe inference: %w", err)
	}
	if _, err := b.encoder.InverseTransform(idx); err != nil {
		return fmt.Errorf("probe decode: %w", err)
	}
	return nil
}

// NewBundle wraps an already-deserialized classifier and encoder pair.
// The serving path goes through Load; this is for tooling and tests.
func NewBundle(c *Classifier, le *LabelEncoder) *Bundle {
	if c == nil || le == nil {
		return &Bundle{}
	}
	return &Bundle{classifier: c, encoder: le, available: true}
}

// Available reports whether both artifacts loaded.
func (b *Bundle) Available() bool {
	return b != nil && b.available
}

// Classifier returns the loaded classifier, or nil when unavailable.
func (b *Bundle) Classifier() *Classifier {
	if !b.Available() {
		return nil
	}
	return b.classifier
}

// Encoder returns the loaded label encoder, or nil when unavailable.
func (b *Bundle) Encoder() *LabelEncoder {
	if !b.Available() {
		return nil
	}
	return b.encoder
}

// Classes returns the encoder's known label set, nil when unavailable.
func (b *Bundle) Classes() []string {
	if !b.Available() {
		return nil
	}
	return b.encoder.Classes
}
