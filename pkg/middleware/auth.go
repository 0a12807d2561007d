package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/traffic-sync-engine/pkg/auth"
)

type contextKey string

const (
	ContextKeyCaller contextKey = "caller"
)

// Rotas abertas: liveness e scrape de métricas não carregam token
func isPublicPath(path string) bool {
	return path == "/healthcheck" || path == "/metrics"
}

func AuthMiddleware(validator auth.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCaller, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
