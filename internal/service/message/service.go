package message

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/telemetry"
)

type ticketRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Touch(ctx context.Context, id int64, now time.Time) (time.Time, error)
}

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	MessageAdded(ctx context.Context, m domain.Message)
}

// Service appends messages to ticket timelines.
type Service struct {
	tickets  ticketRepo
	messages messageRepo
	tx       txManager
	events   eventPublisher
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new message service.
func NewService(
	log *slog.Logger,
	tickets ticketRepo,
	messages messageRepo,
	tx txManager,
	events eventPublisher,
) *Service {
	return &Service{
		tickets:  tickets,
		messages: messages,
		tx:       tx,
		events:   events,
		log:      log.With("service", "message"),
		now:      time.Now,
	}
}

// append inserts the message and advances the ticket's updated_at in one
// transaction.
func (s *Service) append(ctx context.Context, ticketID int64, author domain.AuthorType, text string) (*domain.Message, error) {
	var created *domain.Message
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.now().UTC().Truncate(time.Microsecond)

		msg, err := s.messages.Create(ctx, &domain.Message{
			TicketID:   ticketID,
			AuthorType: author,
			Text:       text,
			CreatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("create message: %w", err)
		}

		if _, err := s.tickets.Touch(ctx, ticketID, now); err != nil {
			return fmt.Errorf("touch ticket: %w", err)
		}

		created = msg
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.MessagesTotal.WithLabelValues(author.String()).Inc()
	s.events.MessageAdded(ctx, *created)
	return created, nil
}
