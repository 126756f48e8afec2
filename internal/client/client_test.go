package client

import (
	"net/http/httptest"
	"testing"
	"time"

	"persona-api/internal/api"
	"persona-api/internal/cfg"
	"persona-api/internal/feature"
	"persona-api/internal/model"
	"persona-api/internal/predict"
)

func startServer(t *testing.T, bundle *model.Bundle) *httptest.Server {
	t.Helper()
	settings := cfg.Settings{
		Port:         5000,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	srv := api.New(predict.New(bundle, nil), nil, settings)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_Predict(t *testing.T) {
	ts := startServer(t, model.StubBundle())
	c := New(ts.URL, 5*time.Second)

	label, err := c.Predict(feature.Record{"Stage_fear": "Yes"})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if label != "Introvert" {
		t.Errorf("expected Introvert, got %s", label)
	}
}

func TestClient_PredictUnavailable(t *testing.T) {
	ts := startServer(t, model.Load("missing.json", "missing.json"))
	c := New(ts.URL, 5*time.Second)

	_, err := c.Predict(feature.Record{})
	if err == nil {
		t.Fatal("expected error when model is unavailable")
	}
}

func TestClient_Health(t *testing.T) {
	ts := startServer(t, model.StubBundle())
	c := New(ts.URL, 0) // exercise the default timeout path

	loaded, err := c.Health()
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if !loaded {
		t.Error("expected model_loaded=true")
	}

	down := startServer(t, model.Load("missing.json", "missing.json"))
	c = New(down.URL, 5*time.Second)
	loaded, err = c.Health()
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if loaded {
		t.Error("expected model_loaded=false")
	}
}
