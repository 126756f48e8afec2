// Package client is a small Go client for the prediction API, used by the
// predictcli tool and by integration tests.
package client

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"persona-api/internal/feature"
)

// Client calls a running prediction server.
type Client struct {
	base string
	rest *resty.Client
}

// New creates a client for the server at base, e.g. "http://localhost:5000".
func New(base string, timeout time.Duration) *Client {
	r := resty.New()
	if timeout > 0 {
		r.SetTimeout(timeout)
	} else {
		r.SetTimeout(5 * time.Second) // default fallback
	}
	return &Client{base: base, rest: r}
}

type predictionResp struct {
	Prediction string `json:"prediction"`
	Error      string `json:"error"`
}

// Predict sends one record to POST /predict and returns the label.
func (c *Client) Predict(rec feature.Record) (string, error) {
	resp := &predictionResp{}
	httpResp, err := c.rest.R().
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		SetResult(resp).
		SetError(resp).
		Post(c.base + "/predict")
	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("predict: %s", resp.Error)
	}
	if httpResp.IsError() {
		return "", fmt.Errorf("predict: unexpected status %s", httpResp.Status())
	}
	return resp.Prediction, nil
}

type healthResp struct {
	ModelLoaded bool `json:"model_loaded"`
}

// Health reports whether the server's model artifacts are loaded.
func (c *Client) Health() (bool, error) {
	resp := &healthResp{}
	_, err := c.rest.R().
		SetResult(resp).
		SetError(resp).
		Get(c.base + "/health")
	if err != nil {
		return false, err
	}
	return resp.ModelLoaded, nil
}
