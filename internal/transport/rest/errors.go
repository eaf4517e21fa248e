package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// handleError maps domain errors to HTTP responses. Unknown errors are
// logged and reported as an opaque 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrInvalidAccessKey):
		writeError(w, http.StatusUnauthorized, "invalid access key")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "ticket not found")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
