package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mindtrackhq/mindtrack/internal/auth"
	"github.com/mindtrackhq/mindtrack/internal/database"
)

// getCurrentUser returns the database user for the authenticated request.
func (s *Server) getCurrentUser(r *http.Request) (*database.User, error) {
	ctx := r.Context()
	userID := auth.UserID(ctx)
	if userID == uuid.Nil {
		return nil, &authError{"not authenticated"}
	}

	user, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		return nil, &authError{"database error"}
	}
	if user == nil {
		return nil, &authError{"user not found"}
	}

	return user, nil
}

// requireUser validates the caller may act on the user in the "userID"
// path parameter. Professionals may only access their own resources,
// managers may access anyone's.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	current, err := s.getCurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(r.PathValue("userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return uuid.Nil, false
	}

	if userID != current.ID && current.Role != database.RoleManager {
		writeError(w, http.StatusForbidden, "access denied")
		return uuid.Nil, false
	}

	return userID, true
}

// parsePagination reads limit and offset query parameters with defaults.
func parsePagination(r *http.Request) (limit, offset int) {
	limit, offset = 50, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func parsePathID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}

// userResponse is the public view of a user, without the password hash.
type userResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Company *string   `json:"company,omitempty"`
}

func newUserResponse(u *database.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Company: u.Company,
	}
}

type authError struct {
	message string
}

func (e *authError) Error() string {
	return e.message
}
