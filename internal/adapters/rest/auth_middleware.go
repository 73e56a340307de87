package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/nasser0p/realestate/internal/core/port"
)

type contextKey string

const identityKey = contextKey("identity")

// IdentityFromRequest returns the authenticated caller, or nil for an
// anonymous request.
func IdentityFromRequest(r *http.Request) *port.Identity {
	identity, _ := r.Context().Value(identityKey).(*port.Identity)
	return identity
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

// OptionalAuthMiddleware resolves the caller identity when a valid bearer
// token is present. Requests without a token, or with one that fails
// validation, continue as anonymous.
func OptionalAuthMiddleware(tokenService port.TokenServicePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := tokenService.Validate(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthMiddleware rejects requests without a valid bearer token.
func RequireAuthMiddleware(tokenService port.TokenServicePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
				return
			}

			identity, err := tokenService.Validate(token)
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, "Invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdminMiddleware additionally rejects authenticated callers without
// the admin role. It must run after RequireAuthMiddleware.
func RequireAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromRequest(r)
		if identity == nil {
			WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if identity.Role != port.RoleAdmin {
			WriteJSONError(w, http.StatusForbidden, "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
