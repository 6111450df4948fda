package middleware

import (
	"net/http"
	"strings"
)

// CORS habilita GET desde el origin configurado.
// Origin vacío => middleware apagado (pasa todo sin headers CORS).
func CORS(allowOrigin string) func(http.Handler) http.Handler {
	allowOrigin = strings.TrimSpace(allowOrigin)

	return func(next http.Handler) http.Handler {
		if allowOrigin == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", http.MethodGet)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
