package export

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// NewServer wraps the exporter in an HTTP server exposing /metrics for
// Prometheus scrapes, /results for the latest report as JSON, and /healthz.
func NewServer(addr string, e *Exporter) *http.Server {
	router := mux.NewRouter()
	router.Handle("/metrics", e.Handler()).Methods("GET")
	router.HandleFunc("/results", e.handleResults).Methods("GET")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")

	return &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func (e *Exporter) handleResults(w http.ResponseWriter, r *http.Request) {
	rep := e.Latest()
	if rep == nil {
		http.Error(w, "no results yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
