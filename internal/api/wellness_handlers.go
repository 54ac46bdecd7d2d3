package api

import (
	"log"
	"net/http"

	"github.com/mindtrackhq/mindtrack/internal/database"
)

// History windows fetched for analysis. The engine applies its own
// tighter windows for alert rules.
const (
	moodHistoryLimit   = 10
	sprintHistoryLimit = 5
)

// handleWellness runs a full well-being analysis over the user's recent
// history and persists any generated alerts.
func (s *Server) handleWellness(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	moods, err := s.db.ListMoodsByUser(r.Context(), userID, moodHistoryLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load moods")
		return
	}

	sprints, err := s.db.ListSprintsByUser(r.Context(), userID, sprintHistoryLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load sprints")
		return
	}

	report := s.engine.AnalyzeWellness(userID, database.MoodEntries(moods), database.SprintEntries(sprints))

	for _, alert := range report.Alerts {
		if _, err := s.db.CreateAlert(r.Context(), userID, alert); err != nil {
			log.Printf("failed to persist %s alert for user %s: %v", alert.Kind, userID, err)
		}
	}

	writeJSON(w, http.StatusOK, report)
}
