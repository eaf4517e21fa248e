package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres"
	ticketrepo "github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres/ticket"
	"github.com/heartmarshall/helpdesk-backend/internal/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

type demoTicket struct {
	name        string
	machine     string
	department  string
	description string
	contact     *string
	status      domain.TicketStatus
	priority    domain.TicketPriority
}

func strPtr(s string) *string { return &s }

var demoTickets = []demoTicket{
	{
		name:        "Ana Souza",
		machine:     "PC-102",
		department:  "Financeiro",
		description: "Printer does not connect to Wi-Fi.",
		contact:     strPtr("11 99999-1111"),
		status:      domain.TicketStatusOpen,
		priority:    domain.TicketPriorityHigh,
	},
	{
		name:        "Carlos Lima",
		machine:     "NB-77",
		department:  "RH",
		description: "Error when opening the internal system.",
		contact:     strPtr("11 98888-2222"),
		status:      domain.TicketStatusInProgress,
		priority:    domain.TicketPriorityMedium,
	},
	{
		name:        "Julia Freitas",
		machine:     "PC-310",
		department:  "Operações",
		description: "Keyboard keys keep sticking.",
		status:      domain.TicketStatusClosed,
		priority:    domain.TicketPriorityLow,
	},
}

// SeededTicket is one inserted demo ticket with its access key.
type SeededTicket struct {
	ID        int64
	Name      string
	Status    domain.TicketStatus
	AccessKey string
}

// Seed inserts the demo tickets in one transaction. Each ticket gets a
// fresh access key; closed tickets get closedAt so the row is consistent.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) ([]SeededTicket, error) {
	repo := ticketrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	now := time.Now()

	var out []SeededTicket
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		out = out[:0]
		for _, d := range demoTickets {
			key, err := auth.GenerateAccessKey()
			if err != nil {
				return fmt.Errorf("generate access key: %w", err)
			}

			t := domain.NewTicket(d.name, d.machine, d.department, d.description, d.contact, key, now)
			t.Priority = d.priority
			t.SetStatus(d.status, now)

			created, err := repo.Create(ctx, t)
			if err != nil {
				return fmt.Errorf("insert demo ticket %q: %w", d.name, err)
			}
			out = append(out, SeededTicket{
				ID:        created.ID,
				Name:      created.RequesterName,
				Status:    created.Status,
				AccessKey: key,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "demo tickets seeded", slog.Int("count", len(out)))
	return out, nil
}
