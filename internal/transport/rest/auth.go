package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/helpdesk-backend/internal/service/auth"
	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (ctxutil.AdminPrincipal, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. It only verifies the credential; admin
// requests still send it on every call.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.svc.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusOK)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK)
}
