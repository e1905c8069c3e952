package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/veritable/veritable-go/internal/crypto"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated identity decoded from a bearer token.
type Principal struct {
	ID   int64
	Role string
	Name string
}

// JWTAuth returns the access guard: it rejects requests with a missing token
// (401) or an invalid/expired one (403), and attaches the decoded principal to
// the request context otherwise. Role checks are left to the handlers.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			principal := Principal{
				ID:   claims.PrincipalID,
				Role: claims.Role,
				Name: claims.Name(),
			}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext extracts the authenticated principal from the request context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
