package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// LabelEncoder maps the classifier's encoded class indices back to
// human-readable labels. It is the reverse half of the bidirectional
// mapping the training pipeline fit.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// LoadLabelEncoder deserializes a label-encoder artifact from path.
func LoadLabelEncoder(path string) (*LabelEncoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read label encoder artifact: %w", err)
	}

	var le LabelEncoder
	if err := json.Unmarshal(data, &le); err != nil {
		return nil, fmt.Errorf("parse label encoder artifact: %w", err)
	}
	if len(le.Classes) == 0 {
		return nil, fmt.Errorf("label encoder artifact %s has no classes", path)
	}
	return &le, nil
}

// InverseTransform returns the label for an encoded class index.
func (le *LabelEncoder) InverseTransform(idx int) (string, error) {
	if idx < 0 || idx >= len(le.Classes) {
		return "", fmt.Errorf("class index %d out of range [0,%d)", idx, len(le.Classes))
	}
	return le.Classes[idx], nil
}

// Transform returns the encoded index for a label. The serving path only
// needs the inverse direction; this exists for tooling and tests.
func (le *LabelEncoder) Transform(label string) (int, error) {
	for i, c := range le.Classes {
		if c == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown label %q", label)
}
