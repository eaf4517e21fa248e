package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/helpdesk-backend/internal/telemetry"
)

// unmatchedRoute labels requests that hit no registered pattern.
const unmatchedRoute = "unmatched"

// Metrics records request counts and latencies labelled by route pattern.
// It must wrap the ServeMux directly: the mux sets r.Pattern on the request
// it receives, and requests copied by outer middleware never see it.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			telemetry.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			telemetry.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
