package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/projecthub/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// requireAuth protects a handler behind bearer-token verification. The
// decoded claims are attached to the request context; on failure the
// request never reaches the handler.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, "Missing token")
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext returns the verified claims attached by requireAuth,
// or nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}
