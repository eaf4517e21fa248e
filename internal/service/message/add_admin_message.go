package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/helpdesk-backend/internal/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

// AddAdminMessage appends an ADMIN reply to an existing ticket.
func (s *Service) AddAdminMessage(ctx context.Context, input AddAdminMessageInput) error {
	admin, err := auth.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	input.Text = domain.SanitizeText(input.Text)
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.tickets.GetByID(ctx, input.TicketID); err != nil {
		return fmt.Errorf("get ticket: %w", err)
	}

	msg, err := s.append(ctx, input.TicketID, domain.AuthorTypeAdmin, input.Text)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "admin message added",
		slog.Int64("ticket_id", input.TicketID),
		slog.Int64("message_id", msg.ID),
		slog.String("admin", admin.Username),
	)
	return nil
}
