package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"persona-api/internal/feature"
	"persona-api/internal/predict"
)

// PredictionResponse is the success payload of POST /predict.
type PredictionResponse struct {
	Prediction string `json:"prediction"`
}

// ErrorResponse is the error payload every failure path returns. No failure
// crashes the process or leaks a stack trace.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed, use POST"})
		return
	}

	if !s.svc.Available() {
		if s.metrics != nil {
			s.metrics.UnavailableHits.Inc()
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: predict.ErrUnavailable.Error()})
		return
	}

	// The body is parsed as JSON regardless of Content-Type. Absent fields
	// degrade to missing values downstream; a structurally invalid body is
	// the only parse-level failure.
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to read request body: " + err.Error()})
		return
	}

	var rec feature.Record
	if len(body) > 0 {
		if err := json.Unmarshal(body, &rec); err != nil {
			log.Warn().Err(err).Msg("unparseable prediction request body")
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "invalid JSON body: " + err.Error()})
			return
		}
	}

	vec := feature.Normalize(rec)

	label, err := s.svc.Predict(r.Context(), vec)
	if err != nil {
		log.Error().Err(err).Msg("prediction failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, PredictionResponse{Prediction: label})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	if !s.svc.Available() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"model_loaded": s.svc.Available(),
		"checked_at":   time.Now().UTC(),
	})
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	if !s.svc.Available() {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: predict.ErrUnavailable.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"classes":  s.svc.Classes(),
		"features": feature.Schema,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
