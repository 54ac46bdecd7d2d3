package api

import (
	"net/http"

	"github.com/mindtrackhq/mindtrack/internal/database"
)

// handleListUsers returns all users. Managers only.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	current, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if current.Role != database.RoleManager {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	limit, offset := parsePagination(r)
	users, err := s.db.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	resp := make([]userResponse, len(users))
	for i := range users {
		resp[i] = newUserResponse(&users[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": resp})
}

// handleGetUser returns a single user.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	user, err := s.db.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(user))
}

// handleUpdateUser updates profile fields.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req struct {
		Name    string  `json:"name"`
		Role    string  `json:"role"`
		Company *string `json:"company"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Role == "" {
		req.Role = database.RoleProfessional
	}
	if req.Role != database.RoleProfessional && req.Role != database.RoleManager {
		writeError(w, http.StatusBadRequest, "invalid role")
		return
	}

	if err := s.db.UpdateUser(r.Context(), userID, req.Name, req.Role, req.Company); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	user, err := s.db.GetUserByID(r.Context(), userID)
	if err != nil || user == nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(user))
}

// handleDeleteUser removes a user and all their records.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
