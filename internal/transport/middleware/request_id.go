package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request correlation id in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds client-supplied ids before they reach the logs.
const maxRequestIDLen = 128

// RequestID returns middleware that reuses the incoming X-Request-Id or
// generates a new UUID, stores it in the context and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
