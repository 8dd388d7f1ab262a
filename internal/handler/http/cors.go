package http

import (
	"net/http"
	"strings"
)

// CORSConfig controls the cross-origin policy applied to every request.
type CORSConfig struct {
	// AllowedOrigins lists exact origins, or a single "*" for any.
	AllowedOrigins []string
}

// NewCORSConfig parses a comma-separated origin list. Empty input
// allows any origin, which suits local development.
func NewCORSConfig(origins string) CORSConfig {
	if origins == "" {
		return CORSConfig{AllowedOrigins: []string{"*"}}
	}
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return CORSConfig{AllowedOrigins: out}
}

func (c CORSConfig) allowed(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// CORS returns middleware applying the configured cross-origin policy
// and short-circuiting preflight requests.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && cfg.allowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
