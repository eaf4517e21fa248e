package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// Login verifies the admin credential.
// Returns domain.ErrInvalidCredentials if it does not match, including when
// either field is blank.
func (s *Service) Login(ctx context.Context, input LoginInput) (ctxutil.AdminPrincipal, error) {
	input.Username = strings.TrimSpace(input.Username)

	p, err := s.checker.Check(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.log.WarnContext(ctx, "admin login rejected", slog.String("username", input.Username))
			return ctxutil.AdminPrincipal{}, domain.ErrInvalidCredentials
		}
		return ctxutil.AdminPrincipal{}, fmt.Errorf("check credentials: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("username", p.Username))
	return p, nil
}

// Logout ends an admin session. Admin requests carry their credential on
// every call, so there is no server-side state to drop.
func (s *Service) Logout(ctx context.Context) error {
	if p, ok := ctxutil.AdminFromCtx(ctx); ok {
		s.log.InfoContext(ctx, "admin logged out", slog.String("username", p.Username))
	}
	return nil
}
