package dashserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const indexHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Flightdeck</title>
  </head>
  <body>
    <h1>Flightdeck</h1>
    <p>Live step and stage data: <a href="/api/steps">/api/steps</a>, <a href="/api/stages">/api/stages</a>.</p>
  </body>
</html>`

// NewHandler builds the HTTP handler serving the dashboard shell and the
// step/stage view models.
func NewHandler(store *Store) (http.Handler, error) {
	if store == nil {
		return nil, errors.New("dashserver: store is nil")
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", serveIndex)
	mux.Handle("/api/steps", serveJSON(func() any { return stepsResponse(store.State()) }))
	mux.Handle("/api/stages", serveJSON(func() any { return stagesResponse(store.State()) }))
	return mux, nil
}

// serveIndex writes the base HTML shell.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexHTML)
}

// serveJSON renders a view model as JSON on GET.
func serveJSON(view func() any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view())
	})
}
