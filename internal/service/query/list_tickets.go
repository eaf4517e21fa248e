package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/helpdesk-backend/internal/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

// ListAdmin returns every ticket matching the input, newest first.
func (s *Service) ListAdmin(ctx context.Context, input ListTicketsInput) ([]domain.Ticket, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	f := input.filter()
	tickets, err := s.tickets.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	s.log.DebugContext(ctx, "tickets listed",
		slog.Int("count", len(tickets)),
		slog.Bool("filtered", !f.IsEmpty()),
	)
	return tickets, nil
}
