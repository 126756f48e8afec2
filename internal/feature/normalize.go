// Package feature maps loosely typed prediction requests onto the fixed
// feature vector the classifier was trained on. Field order is part of the
// trained model's contract: reordering silently produces wrong predictions,
// so the schema lives here and nowhere else.
package feature

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field names, in training order.
const (
	TimeSpentAlone          = "Time_spent_Alone"
	StageFear               = "Stage_fear"
	SocialEventAttendance   = "Social_event_attendance"
	GoingOutside            = "Going_outside"
	DrainedAfterSocializing = "Drained_after_socializing"
	FriendsCircleSize       = "Friends_circle_size"
	PostFrequency           = "Post_frequency"
)

// Schema is the ordered feature schema. Count must stay 7 and the order must
// match the training pipeline.
var Schema = []string{
	TimeSpentAlone,
	StageFear,
	SocialEventAttendance,
	GoingOutside,
	DrainedAfterSocializing,
	FriendsCircleSize,
	PostFrequency,
}

// yes/no fields; everything else in the schema is numeric.
var categorical = map[string]bool{
	StageFear:               true,
	DrainedAfterSocializing: true,
}

// Count is the number of features the classifier expects.
const Count = 7

// Missing is the sentinel for a numeric field that was absent or
// unparseable. The classifier's preprocessing fills it from the
// imputation values stored in the model artifact.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v is the missing sentinel.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Record is one raw prediction request body: arbitrary keys, arbitrary
// value types. Unknown keys are ignored.
type Record map[string]any

// Normalize maps a record onto the fixed-order feature vector. It never
// fails: absent or malformed numeric fields become the missing sentinel and
// yes/no fields default to 0. The conflation of "explicitly No" with
// "absent" matches the behavior the model was trained against.
func Normalize(rec Record) []float64 {
	vec := make([]float64, Count)
	for i, name := range Schema {
		raw, ok := rec[name]
		if categorical[name] {
			if !ok {
				vec[i] = 0
				continue
			}
			vec[i] = coerceYesNo(raw)
			continue
		}
		if !ok {
			vec[i] = Missing()
			continue
		}
		vec[i] = coerceNumeric(raw)
	}
	return vec
}

// coerceYesNo maps any value to 1 when its string form is "yes"
// (case-insensitive), 0 otherwise. nil counts as absent.
func coerceYesNo(v any) float64 {
	if v == nil {
		return 0
	}
	s := stringify(v)
	if strings.EqualFold(strings.TrimSpace(s), "yes") {
		return 1
	}
	return 0
}

// coerceNumeric parses v as a number, returning the missing sentinel when it
// cannot. JSON numbers arrive as float64; numeric strings and bools are
// accepted for callers that send loosely typed payloads.
func coerceNumeric(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
		return Missing()
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
		return Missing()
	case nil:
		return Missing()
	default:
		return Missing()
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return string(s)
	default:
		return ""
	}
}
