package api

import (
	"net/http"
)

// handleCreateHabit records a healthy habit for the authenticated user.
func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		Kind   string `json:"kind"`
		Points int    `json:"points"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Kind == "" {
		writeError(w, http.StatusBadRequest, "kind is required")
		return
	}
	if req.Points <= 0 {
		req.Points = 10
	}

	habit, err := s.db.CreateHabit(r.Context(), user.ID, req.Kind, req.Points)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create habit")
		return
	}
	writeJSON(w, http.StatusCreated, habit)
}

// handleListHabits returns the authenticated user's habit history along
// with their accumulated points.
func (s *Server) handleListHabits(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	limit, _ := parsePagination(r)
	habits, err := s.db.ListHabitsByUser(r.Context(), user.ID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list habits")
		return
	}

	points, err := s.db.TotalHabitPoints(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to total points")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"habits":       habits,
		"total_points": points,
	})
}

// handleDeleteHabit removes a habit record.
func (s *Server) handleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	habitID, err := parsePathID(r, "habitID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid habit ID")
		return
	}

	habit, err := s.db.GetHabit(r.Context(), habitID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if habit == nil || habit.UserID != user.ID {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}

	if err := s.db.DeleteHabit(r.Context(), habitID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete habit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
