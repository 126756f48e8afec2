package api

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

// homeTmpl is the informational page served on GET /. The example endpoint
// URL reflects whatever host the client used to reach the service.
var homeTmpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head><title>Personality Prediction API</title></head>
<body style="font-family: Arial, sans-serif; max-width: 640px; margin: 50px auto;">
  <h1>Welcome to the Personality Prediction API!</h1>
  <p>This API predicts whether a person is an Introvert or Extrovert based on
  provided characteristics.</p>
  <p>To get a prediction, send a <strong>POST request</strong> to the
  <strong><code>/predict</code></strong> endpoint.</p>
  <h2>How to use it</h2>
  <p><strong>Endpoint:</strong> <code>{{.PredictURL}}</code></p>
  <p><strong>Method:</strong> <code>POST</code></p>
  <p><strong>Content-Type:</strong> <code>application/json</code></p>
  <p><strong>Body (JSON example):</strong></p>
  <pre style="background-color: #eee; padding: 15px;"><code>{
    "Time_spent_Alone": 7.0,
    "Stage_fear": "No",
    "Social_event_attendance": 2.0,
    "Going_outside": 1.0,
    "Drained_after_socializing": "Yes",
    "Friends_circle_size": 2.0,
    "Post_frequency": 1.0
}</code></pre>
  <p>You can use <code>curl</code>, Postman, or any HTTP client to send the
  POST request.</p>
</body>
</html>
`))

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	// The mux routes every unregistered path here; the page belongs to /
	// only.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	data := struct{ PredictURL string }{
		PredictURL: scheme + "://" + r.Host + "/predict",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("failed to render home page")
	}
}
