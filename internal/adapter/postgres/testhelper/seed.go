package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTicket inserts an OPEN, MEDIUM ticket with unique requester/machine
// values and a known access key. Mutators run before the insert, so they
// can change status, priority, timestamps or the key.
func SeedTicket(t *testing.T, pool *pgxpool.Pool, mutators ...func(*domain.Ticket)) domain.Ticket {
	t.Helper()

	suffix := UniqueSuffix()
	tk := domain.NewTicket(
		"Requester "+suffix,
		"PC-"+suffix,
		"Dept-"+suffix,
		"Seeded ticket "+suffix,
		nil,
		"KEY"+suffix[:5],
		time.Now(),
	)
	for _, m := range mutators {
		m(tk)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO tickets (requester_name, machine, department, description, contact,
		                      status, priority, access_key, created_at, updated_at, closed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		tk.RequesterName, tk.Machine, tk.Department, tk.Description, tk.Contact,
		string(tk.Status), string(tk.Priority), tk.AccessKey, tk.CreatedAt, tk.UpdatedAt, tk.ClosedAt,
	).Scan(&tk.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTicket insert: %v", err)
	}

	return *tk
}

// SeedMessage appends a message to the ticket directly, without touching
// the ticket's updated_at.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, ticketID int64, author domain.AuthorType, text string, createdAt time.Time) domain.Message {
	t.Helper()

	msg := domain.Message{
		TicketID:   ticketID,
		AuthorType: author,
		Text:       text,
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO messages (ticket_id, author_type, body, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		msg.TicketID, string(msg.AuthorType), msg.Text, msg.CreatedAt,
	).Scan(&msg.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert: %v", err)
	}

	return msg
}
