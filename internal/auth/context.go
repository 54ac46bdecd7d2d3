package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const claimsKey contextKey = "mindtrack.claims"

// FromContext returns the verified claims attached by Middleware, or nil.
func FromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// UserID returns the authenticated user's ID, or uuid.Nil when the
// request is unauthenticated or the subject is malformed.
func UserID(ctx context.Context) uuid.UUID {
	claims := FromContext(ctx)
	if claims == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Email returns the authenticated user's email, or "".
func Email(ctx context.Context) string {
	claims := FromContext(ctx)
	if claims == nil {
		return ""
	}
	return claims.Email
}

// IsAuthenticated reports whether the context carries verified claims.
func IsAuthenticated(ctx context.Context) bool {
	return FromContext(ctx) != nil
}

// HasRole reports whether the authenticated user holds the given role.
// Managers also hold the professional role.
func HasRole(ctx context.Context, role string) bool {
	claims := FromContext(ctx)
	if claims == nil {
		return false
	}
	if claims.Role == role {
		return true
	}
	return claims.Role == "manager" && role == "professional"
}
