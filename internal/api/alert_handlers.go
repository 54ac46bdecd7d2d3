package api

import (
	"net/http"
)

// handleListAlerts returns a user's persisted alerts, most recent first.
func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	limit, _ := parsePagination(r)
	alerts, err := s.db.ListAlertsByUser(r.Context(), userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list alerts")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}
