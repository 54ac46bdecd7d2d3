package api

import (
	"net/http"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/database"
)

// handleCreateSprint records a work sprint for the authenticated user.
func (s *Server) handleCreateSprint(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		Name           string     `json:"name"`
		StartedAt      time.Time  `json:"started_at"`
		EndedAt        *time.Time `json:"ended_at"`
		Productivity   *float64   `json:"productivity"`
		CompletedTasks *int       `json:"completed_tasks"`
		Commits        *int       `json:"commits"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.StartedAt.IsZero() {
		writeError(w, http.StatusBadRequest, "started_at is required")
		return
	}
	if req.Productivity != nil && (*req.Productivity < 0 || *req.Productivity > 100) {
		writeError(w, http.StatusBadRequest, "productivity must be between 0 and 100")
		return
	}

	sprint, err := s.db.CreateSprint(r.Context(), database.CreateSprintParams{
		UserID:         user.ID,
		Name:           req.Name,
		StartedAt:      req.StartedAt,
		EndedAt:        req.EndedAt,
		Productivity:   req.Productivity,
		CompletedTasks: req.CompletedTasks,
		Commits:        req.Commits,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create sprint")
		return
	}
	writeJSON(w, http.StatusCreated, sprint)
}

// handleListSprints returns the authenticated user's sprint history,
// most recent first.
func (s *Server) handleListSprints(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	limit, _ := parsePagination(r)
	sprints, err := s.db.ListSprintsByUser(r.Context(), user.ID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sprints")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sprints": sprints})
}

// handleGetSprint returns a single sprint record.
func (s *Server) handleGetSprint(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	sprintID, err := parsePathID(r, "sprintID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sprint ID")
		return
	}

	sprint, err := s.db.GetSprint(r.Context(), sprintID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if sprint == nil || sprint.UserID != user.ID {
		writeError(w, http.StatusNotFound, "sprint not found")
		return
	}
	writeJSON(w, http.StatusOK, sprint)
}

// handleDeleteSprint removes a sprint record.
func (s *Server) handleDeleteSprint(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	sprintID, err := parsePathID(r, "sprintID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sprint ID")
		return
	}

	sprint, err := s.db.GetSprint(r.Context(), sprintID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if sprint == nil || sprint.UserID != user.ID {
		writeError(w, http.StatusNotFound, "sprint not found")
		return
	}

	if err := s.db.DeleteSprint(r.Context(), sprintID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete sprint")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
