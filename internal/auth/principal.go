package auth

import (
	"context"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// RequireAdmin returns the admin principal stored in ctx by the admin
// middleware, or domain.ErrUnauthorized when there is none.
func RequireAdmin(ctx context.Context) (ctxutil.AdminPrincipal, error) {
	p, ok := ctxutil.AdminFromCtx(ctx)
	if !ok {
		return ctxutil.AdminPrincipal{}, domain.ErrUnauthorized
	}
	return p, nil
}
