package model

import "time"

// StubClassifier returns a tiny tree for tests: a single split on
// Stage_fear, class 1 when present, class 0 otherwise.
func StubClassifier() *Classifier {
	return &Classifier{
		Version:    "stub-1",
		TrainedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Imputation: []float64{4, 0, 5, 3, 0, 8, 3},
		Nodes: []TreeNode{
			{FeatureIdx: 1, Threshold: 0.5, LeftChild: 1, RightChild: 2},
			{FeatureIdx: -1, LeftChild: -1, RightChild: -1, ClassLabel: 0, IsLeaf: true},
			{FeatureIdx: -1, LeftChild: -1, RightChild: -1, ClassLabel: 1, IsLeaf: true},
		},
	}
}

// StubEncoder returns the two-class label encoder matching StubClassifier.
func StubEncoder() *LabelEncoder {
	return &LabelEncoder{Classes: []string{"Extrovert", "Introvert"}}
}

// StubBundle returns an available bundle built from the stub artifacts.
func StubBundle() *Bundle {
	return NewBundle(StubClassifier(), StubEncoder())
}
