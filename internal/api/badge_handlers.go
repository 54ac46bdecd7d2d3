package api

import (
	"net/http"

	"github.com/mindtrackhq/mindtrack/internal/database"
)

// handleCreateBadge defines a new badge. Managers only.
func (s *Server) handleCreateBadge(w http.ResponseWriter, r *http.Request) {
	current, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if current.Role != database.RoleManager {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	var req struct {
		Name           string  `json:"name"`
		Description    *string `json:"description"`
		RequiredPoints int     `json:"required_points"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.RequiredPoints <= 0 {
		writeError(w, http.StatusBadRequest, "required_points must be positive")
		return
	}

	badge, err := s.db.CreateBadge(r.Context(), req.Name, req.Description, req.RequiredPoints)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create badge")
		return
	}
	writeJSON(w, http.StatusCreated, badge)
}

// handleListBadges returns all badge definitions.
func (s *Server) handleListBadges(w http.ResponseWriter, r *http.Request) {
	badges, err := s.db.ListBadges(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list badges")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"badges": badges})
}

// handleDeleteBadge removes a badge definition. Managers only.
func (s *Server) handleDeleteBadge(w http.ResponseWriter, r *http.Request) {
	current, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if current.Role != database.RoleManager {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	badgeID, err := parsePathID(r, "badgeID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid badge ID")
		return
	}

	if err := s.db.DeleteBadge(r.Context(), badgeID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete badge")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListUserBadges returns the badges a user has earned.
func (s *Server) handleListUserBadges(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	badges, err := s.db.ListUserBadges(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list user badges")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"badges": badges})
}

// handleEvaluateBadges awards every badge whose point requirement the
// user's accumulated habit points now meet.
func (s *Server) handleEvaluateBadges(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	points, err := s.db.TotalHabitPoints(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to total points")
		return
	}

	badges, err := s.db.ListBadges(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list badges")
		return
	}

	var awarded []database.Badge
	for _, badge := range badges {
		if points < badge.RequiredPoints {
			continue
		}
		if err := s.db.AwardBadge(r.Context(), userID, badge.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to award badge")
			return
		}
		awarded = append(awarded, badge)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_points": points,
		"awarded":      awarded,
	})
}
