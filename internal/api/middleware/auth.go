// Package middleware holds the cross-cutting HTTP middleware.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

const msgMissingToken = "jeton d'authentification manquant ou invalide"

// TokenVerifier validates an access token and returns the caller identity.
type TokenVerifier interface {
	Parse(tokenString string) (int64, domain.Role, error)
}

// Auth requires a valid Bearer token and stores the caller identity in
// the request context.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			userID, role, err := verifier.Parse(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, roleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated account ID, zero when absent.
func GetUserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id
	}
	return 0
}

// GetRole returns the authenticated role, empty when absent.
func GetRole(ctx context.Context) domain.Role {
	if role, ok := ctx.Value(roleKey).(domain.Role); ok {
		return role
	}
	return ""
}
