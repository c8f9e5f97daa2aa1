package middleware

import (
	"net/http"
	"strings"
)

const wildcardOrigin = "*"

func isOriginAllowed(allowedOrigins []string, origin string) bool {
	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == wildcardOrigin || strings.EqualFold(origin, allowedOrigin) {
			return true
		}
	}
	return false
}

// Cors libera as origens configuradas; "*" libera qualquer origem.
// X-Mock-Data fica exposto para o dashboard saber quando recebeu dados de exemplo.
func Cors(allowedOrigins []string, exposedHeaders ...string) func(http.Handler) http.Handler {
	expose := strings.Join(append([]string{CorrelationIDHeader}, exposedHeaders...), ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && isOriginAllowed(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With, "+CorrelationIDHeader)
				w.Header().Set("Access-Control-Expose-Headers", expose)
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
