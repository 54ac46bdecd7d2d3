package api

import (
	"net/http"
)

// handleCreateMood records a mood for the authenticated user.
func (s *Server) handleCreateMood(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		MoodLevel   int     `json:"mood_level"`
		EnergyLevel int     `json:"energy_level"`
		Comment     *string `json:"comment"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MoodLevel < 1 || req.MoodLevel > 5 {
		writeError(w, http.StatusBadRequest, "mood_level must be between 1 and 5")
		return
	}
	if req.EnergyLevel < 1 || req.EnergyLevel > 5 {
		writeError(w, http.StatusBadRequest, "energy_level must be between 1 and 5")
		return
	}

	mood, err := s.db.CreateMood(r.Context(), user.ID, req.MoodLevel, req.EnergyLevel, req.Comment)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create mood")
		return
	}
	writeJSON(w, http.StatusCreated, mood)
}

// handleListMoods returns the authenticated user's mood history,
// most recent first.
func (s *Server) handleListMoods(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	limit, _ := parsePagination(r)
	moods, err := s.db.ListMoodsByUser(r.Context(), user.ID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list moods")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"moods": moods})
}

// handleGetMood returns a single mood record.
func (s *Server) handleGetMood(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	moodID, err := parsePathID(r, "moodID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mood ID")
		return
	}

	mood, err := s.db.GetMood(r.Context(), moodID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if mood == nil || mood.UserID != user.ID {
		writeError(w, http.StatusNotFound, "mood not found")
		return
	}
	writeJSON(w, http.StatusOK, mood)
}

// handleDeleteMood removes a mood record.
func (s *Server) handleDeleteMood(w http.ResponseWriter, r *http.Request) {
	user, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	moodID, err := parsePathID(r, "moodID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mood ID")
		return
	}

	mood, err := s.db.GetMood(r.Context(), moodID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if mood == nil || mood.UserID != user.ID {
		writeError(w, http.StatusNotFound, "mood not found")
		return
	}

	if err := s.db.DeleteMood(r.Context(), moodID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete mood")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
