package ticket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/telemetry"
)

// Create opens a new ticket and returns its id and access key.
func (s *Service) Create(ctx context.Context, input CreateTicketInput) (*CreateResult, error) {
	input = input.sanitize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key, err := s.newAccessKey()
	if err != nil {
		return nil, fmt.Errorf("generate access key: %w", err)
	}

	t := domain.NewTicket(
		input.Name, input.Machine, input.Department, input.Description,
		input.Contact, key, s.now(),
	)

	created, err := s.tickets.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	telemetry.TicketsCreatedTotal.Inc()
	s.events.TicketCreated(ctx, *created)

	s.log.InfoContext(ctx, "ticket created",
		slog.Int64("ticket_id", created.ID),
		slog.String("department", created.Department),
	)

	return &CreateResult{
		ID:        created.ID,
		Status:    created.Status,
		AccessKey: key,
	}, nil
}
