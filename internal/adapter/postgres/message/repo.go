// Package message implements the ticket message repository using PostgreSQL.
package message

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

const entity = "message"

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
	INSERT INTO messages (ticket_id, author_type, body, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id, ticket_id, author_type, body, created_at`

// Create appends a message to a ticket's timeline.
// Returns domain.ErrNotFound if the ticket does not exist.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL, m.TicketID, string(m.AuthorType), m.Text, m.CreatedAt)
	created, err := scanMessage(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, m.TicketID)
	}
	return created, nil
}

const listByTicketSQL = `
	SELECT id, ticket_id, author_type, body, created_at
	FROM messages
	WHERE ticket_id = $1
	ORDER BY created_at ASC, id ASC`

// ListByTicket returns the ticket's messages oldest first.
// A ticket without messages yields an empty slice.
func (r *Repo) ListByTicket(ctx context.Context, ticketID int64) ([]domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByTicketSQL, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list messages for ticket %d: %w", ticketID, err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var (
		m      domain.Message
		author string
	)
	if err := row.Scan(&m.ID, &m.TicketID, &author, &m.Text, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.AuthorType = domain.AuthorType(author)
	m.CreatedAt = m.CreatedAt.UTC()
	return &m, nil
}
