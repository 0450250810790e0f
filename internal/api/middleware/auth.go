package middleware

import (
	"context"
	"net/http"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	// HeaderUserID carries the authenticated user, set by the gateway
	HeaderUserID = "X-User-ID"
	// HeaderUserRole carries the authenticated role, set by the gateway
	HeaderUserRole = "X-User-Role"
)

// Auth requires the gateway identity headers on every request of the
// protected subrouter. The gateway has already verified the session;
// this service only trusts and propagates the identity.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		if role == "" {
			role = domain.RoleCustomer
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects non-admin identities. Must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RoleFromContext(r.Context()) != domain.RoleAdmin {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff rejects identities that are neither admin nor roster staff
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch RoleFromContext(r.Context()) {
		case domain.RoleAdmin, domain.RoleGroomer, domain.RoleStaff:
			next.ServeHTTP(w, r)
		default:
			handlers.RespondForbidden(w, "staff access required")
		}
	})
}

// UserIDFromContext returns the authenticated user id, empty when unauthenticated
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// RoleFromContext returns the authenticated role, empty when unauthenticated
func RoleFromContext(ctx context.Context) domain.Role {
	role, _ := ctx.Value(userRoleKey).(domain.Role)
	return role
}
