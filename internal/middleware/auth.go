package middleware

import (
	"net/http"
	"strings"

	"github.com/estivensal7/Moment-API/internal/auth"
	"github.com/estivensal7/Moment-API/internal/common"
	"github.com/estivensal7/Moment-API/internal/httpx"
)

const bearerPrefix = "Bearer "

// RequireAuth validates the Authorization bearer token and injects the
// decoded identity claims into the request context. The check is local:
// no store round-trip.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				// Header must start with 'Bearer '.
				httpx.Error(w, common.ErrUnauthenticated)
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				httpx.Error(w, err)
				return
			}

			ctx := auth.ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
