// Package web serves the status API: the latest outputs of the warning
// computer over plain HTTP, for cockpit displays and debugging.
package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/fwcsim/fwc/internal/runtime"
)

// #region status

// Status is the shared view of the latest tick, written by the tick loop
// and read by the HTTP handlers.
type Status struct {
	mu        sync.RWMutex
	runID     string
	startedAt time.Time
	ticks     int
	snap      runtime.Snapshot
}

// NewStatus creates a Status for one run.
func NewStatus(runID string) *Status {
	return &Status{runID: runID, startedAt: time.Now().UTC()}
}

// Set publishes the outputs of the latest tick.
func (s *Status) Set(snap runtime.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.ticks++
	s.mu.Unlock()
}

// Get reads the latest outputs and the tick count.
func (s *Status) Get() (runtime.Snapshot, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.ticks
}

// #endregion status

// #region server

// Server exposes the status endpoints.
type Server struct {
	status *Status
}

// NewRouter builds the API router around the shared status.
func NewRouter(status *Status) *mux.Router {
	s := &Server{status: status}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.health).Methods("GET")
	r.HandleFunc("/status", s.fullStatus).Methods("GET")
	r.HandleFunc("/phase", s.phase).Methods("GET")
	r.HandleFunc("/warnings", s.warnings).Methods("GET")
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) fullStatus(w http.ResponseWriter, _ *http.Request) {
	snap, ticks := s.status.Get()
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":     s.status.runID,
		"started_at": s.status.startedAt.Format(time.RFC3339),
		"ticks":      ticks,
		"outputs":    snap,
	})
}

func (s *Server) phase(w http.ResponseWriter, _ *http.Request) {
	snap, _ := s.status.Get()
	writeJSON(w, http.StatusOK, map[string]any{"flight_phase": snap.FlightPhase})
}

func (s *Server) warnings(w http.ResponseWriter, _ *http.Request) {
	snap, _ := s.status.Get()
	warnings := snap.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"warnings": warnings})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// #endregion server
