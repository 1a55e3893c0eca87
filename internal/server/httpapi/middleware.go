package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/auth"
)

type contextKey int

const contextClaimsKey contextKey = iota

// claimsFromContext returns the token claims stored by the authenticate
// middleware, or nil when the request never passed through it.
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(contextClaimsKey).(*auth.Claims)
	return claims
}

// authenticate verifies the bearer token and stores its claims in the
// request context. Requests without a valid token get 401.
func (s *HTTPServer) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get(common.AuthorizationHeaderName)
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(h, "Bearer "), s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), contextClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireOperation gates a route on the role permission table. It assumes
// authenticate already ran; a missing claim is an internal wiring error.
func requireOperation(op auth.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromContext(r.Context())
			if claims == nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if !auth.Allowed(claims.Role, op) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
