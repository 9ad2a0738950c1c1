package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"netdiag/internal/database"
	"netdiag/internal/models"
)

const defaultHours = 24

// hoursParam reads ?hours=N, falling back to the default on bad input
func hoursParam(r *http.Request) int {
	if h := r.URL.Query().Get("hours"); h != "" {
		if parsed, err := strconv.Atoi(h); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultHours
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("[ WEB ] failed to encode response")
	}
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// handleRecords handles /api/records requests
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	records, err := s.db.GetRecent(hoursParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

// handleStats handles /api/stats requests
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	stats, err := s.db.GetStats(hoursParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}

// handleCauses handles /api/causes requests
func (s *Server) handleCauses(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	counts, err := s.db.GetCauseCounts(hoursParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, counts)
}

// runResponse is the body of /api/runs/{id}
type runResponse struct {
	Session *models.Session `json:"session,omitempty"`
	Records []models.Record `json:"records"`
}

// handleRun handles /api/runs/{id} requests
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/runs/"), "/")
	if id == "" {
		http.Error(w, "run id required", http.StatusBadRequest)
		return
	}

	records, err := s.db.GetByRun(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := runResponse{Records: records}
	session, err := s.db.GetSession(id)
	switch {
	case err == nil:
		resp.Session = &session
	case errors.Is(err, database.ErrSessionNotFound):
		if len(records) == 0 {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp)
}
