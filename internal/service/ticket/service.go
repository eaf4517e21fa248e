package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/helpdesk-backend/internal/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

type ticketRepo interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ticket, error)
	UpdateState(ctx context.Context, t *domain.Ticket) error
}

type messageRepo interface {
	ListByTicket(ctx context.Context, ticketID int64) ([]domain.Message, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	TicketCreated(ctx context.Context, t domain.Ticket)
	TicketUpdated(ctx context.Context, before, after domain.Ticket)
}

// Service implements the ticket lifecycle: creation, reads and admin
// status/priority updates.
type Service struct {
	tickets  ticketRepo
	messages messageRepo
	tx       txManager
	events   eventPublisher
	log      *slog.Logger

	newAccessKey func() (string, error)
	now          func() time.Time
}

// NewService creates a new ticket service.
func NewService(
	log *slog.Logger,
	tickets ticketRepo,
	messages messageRepo,
	tx txManager,
	events eventPublisher,
) *Service {
	return &Service{
		tickets:      tickets,
		messages:     messages,
		tx:           tx,
		events:       events,
		log:          log.With("service", "ticket"),
		newAccessKey: auth.GenerateAccessKey,
		now:          time.Now,
	}
}

// detail loads a ticket together with its messages.
func (s *Service) detail(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	msgs, err := s.messages.ListByTicket(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return &domain.TicketDetail{Ticket: *t, Messages: msgs}, nil
}
