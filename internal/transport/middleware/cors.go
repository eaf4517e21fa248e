package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/helpdesk-backend/internal/config"
)

// CORS returns middleware for the browser front-end. Allowed origins are
// echoed back, never "*", so credentialed requests keep working with a
// wildcard config. Preflight requests are answered with 204.
func CORS(cfg config.CORSConfig) Middleware {
	anyOrigin, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && (anyOrigin || origins[origin]) {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// parseOrigins splits a comma list, dropping blanks. A "*" entry allows any origin.
func parseOrigins(list string) (bool, map[string]bool) {
	set := make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			return true, nil
		default:
			set[o] = true
		}
	}
	return false, set
}
