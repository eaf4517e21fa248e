// Package query serves the admin ticket listing.
package query

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

type ticketRepo interface {
	List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error)
}

// Service answers filtered ticket listings for admins.
type Service struct {
	tickets ticketRepo
	log     *slog.Logger
}

// NewService creates a new query service.
func NewService(log *slog.Logger, tickets ticketRepo) *Service {
	return &Service{
		tickets: tickets,
		log:     log.With("service", "query"),
	}
}
