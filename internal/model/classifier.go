package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"persona-api/internal/feature"
)

// TreeNode is one node of the serialized decision tree. Leaf nodes carry the
// encoded class label; internal nodes carry a split.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	IsLeaf     bool    `json:"is_leaf"`
}

// Classifier is the deserialized classifier artifact: a decision tree plus
// the preprocessing state the training pipeline exported alongside it.
// Imputation holds one fill value per feature, applied to missing inputs
// before the tree walk.
type Classifier struct {
	Version    string     `json:"version"`
	TrainedAt  time.Time  `json:"trained_at"`
	Features   []string   `json:"features"`
	Imputation []float64  `json:"imputation"`
	Nodes      []TreeNode `json:"nodes"`
}

// LoadClassifier deserializes a classifier artifact from path.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier artifact: %w", err)
	}

	var c Classifier
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse classifier artifact: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid classifier artifact %s: %w", path, err)
	}
	return &c, nil
}

func (c *Classifier) validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	if len(c.Imputation) != feature.Count {
		return fmt.Errorf("expected %d imputation values, got %d", feature.Count, len(c.Imputation))
	}
	if len(c.Features) != 0 && len(c.Features) != feature.Count {
		return fmt.Errorf("expected %d feature names, got %d", feature.Count, len(c.Features))
	}
	for i, n := range c.Nodes {
		if n.IsLeaf {
			continue
		}
		if n.FeatureIdx < 0 || n.FeatureIdx >= feature.Count {
			return fmt.Errorf("node %d: feature index %d out of range", i, n.FeatureIdx)
		}
		if n.LeftChild < 0 || n.LeftChild >= len(c.Nodes) ||
			n.RightChild < 0 || n.RightChild >= len(c.Nodes) {
			return fmt.Errorf("node %d: child index out of range", i)
		}
	}
	return nil
}

// Predict runs one inference on a normalized feature vector and returns the
// encoded class index. Missing sentinels are filled from the artifact's
// imputation values first.
func (c *Classifier) Predict(features []float64) (int, error) {
	if len(features) != feature.Count {
		return 0, fmt.Errorf("expected %d features, got %d", feature.Count, len(features))
	}

	filled := make([]float64, len(features))
	for i, v := range features {
		if feature.IsMissing(v) {
			filled[i] = c.Imputation[i]
		} else {
			filled[i] = v
		}
	}

	idx := 0
	for hops := 0; hops <= len(c.Nodes); hops++ {
		node := c.Nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if filled[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
	// validate() bounds every child index, so the only way here is a cycle.
	return 0, fmt.Errorf("tree walk did not reach a leaf")
}
