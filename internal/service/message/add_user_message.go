package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/helpdesk-backend/internal/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

// AddUserMessage appends a USER message when the presented access key
// matches the ticket's key. Checks run in order: input, ticket existence,
// key. Nothing is written unless all three pass.
func (s *Service) AddUserMessage(ctx context.Context, input AddUserMessageInput) error {
	input.Text = domain.SanitizeText(input.Text)
	if err := input.Validate(); err != nil {
		return err
	}

	t, err := s.tickets.GetByID(ctx, input.TicketID)
	if err != nil {
		return fmt.Errorf("get ticket: %w", err)
	}

	if !auth.VerifyAccessKey(t.AccessKey, input.AccessKey) {
		s.log.WarnContext(ctx, "access key rejected", slog.Int64("ticket_id", t.ID))
		return domain.ErrInvalidAccessKey
	}

	msg, err := s.append(ctx, t.ID, domain.AuthorTypeUser, input.Text)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user message added",
		slog.Int64("ticket_id", t.ID),
		slog.Int64("message_id", msg.ID),
	)
	return nil
}
