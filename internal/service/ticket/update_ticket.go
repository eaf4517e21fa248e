package ticket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/helpdesk-backend/internal/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/telemetry"
)

// UpdateStatusAndPriority applies an admin status and/or priority change.
// At least one recognized value is required. Every status change goes
// through Ticket.SetStatus so ClosedAt stays consistent, and UpdatedAt
// always moves forward.
func (s *Service) UpdateStatusAndPriority(ctx context.Context, input UpdateTicketInput) error {
	admin, err := auth.RequireAdmin(ctx)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	status, priority := input.recognized()

	var before, after domain.Ticket
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		t, err := s.tickets.GetByIDForUpdate(ctx, input.ID)
		if err != nil {
			return fmt.Errorf("get ticket: %w", err)
		}
		before = *t

		if status == nil && priority == nil {
			return domain.NewValidationError("body", "nothing to update")
		}

		now := s.now()
		if status != nil {
			t.SetStatus(*status, now)
		}
		if priority != nil {
			t.Priority = *priority
		}
		t.Touch(now)

		if err := s.tickets.UpdateState(ctx, t); err != nil {
			return fmt.Errorf("update ticket: %w", err)
		}
		after = *t
		return nil
	})
	if err != nil {
		return err
	}

	telemetry.StatusTransitionsTotal.WithLabelValues(before.Status.String(), after.Status.String()).Inc()
	s.events.TicketUpdated(ctx, before, after)

	s.log.InfoContext(ctx, "ticket updated",
		slog.Int64("ticket_id", after.ID),
		slog.String("admin", admin.Username),
		slog.String("status", after.Status.String()),
		slog.String("priority", after.Priority.String()),
	)
	return nil
}
