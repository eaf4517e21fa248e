package auth

import (
	"log/slog"

	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// credentialChecker verifies the shared admin credential.
type credentialChecker interface {
	Check(username, password string) (ctxutil.AdminPrincipal, error)
}

// Service implements admin login and logout.
type Service struct {
	log     *slog.Logger
	checker credentialChecker
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, checker credentialChecker) *Service {
	return &Service{
		log:     logger.With("service", "auth"),
		checker: checker,
	}
}
