package ticket

import (
	"context"

	"github.com/heartmarshall/helpdesk-backend/internal/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

// GetPublic returns a ticket and its messages without any credential.
// Anyone who knows the id can read the ticket.
func (s *Service) GetPublic(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.detail(ctx, id)
}

// GetAdmin returns the same view as GetPublic for an authenticated admin.
func (s *Service) GetAdmin(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.detail(ctx, id)
}
