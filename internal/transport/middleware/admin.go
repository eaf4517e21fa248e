package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// AdminRealm is advertised in WWW-Authenticate on 401 responses.
const AdminRealm = "helpdesk"

type credentialChecker interface {
	Check(username, password string) (ctxutil.AdminPrincipal, error)
}

// RequireAdmin returns middleware that admits only requests carrying the
// admin credential as HTTP Basic auth. The authenticated principal is
// stored in the context for the services to check.
func RequireAdmin(checker credentialChecker, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := basicCredentials(r)
			if !ok {
				unauthorized(w)
				return
			}

			principal, err := checker.Check(username, password)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					unauthorized(w)
					return
				}
				logger.ErrorContext(r.Context(), "admin credential check failed",
					slog.String("error", err.Error()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := ctxutil.WithAdmin(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+AdminRealm+`"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}
