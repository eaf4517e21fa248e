// Package ticket implements the ticket repository using PostgreSQL.
// Queries are built with squirrel so the admin listing can compose its
// optional predicates without string concatenation.
package ticket

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

const entity = "ticket"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "requester_name", "machine", "department", "description", "contact",
	"status", "priority", "access_key", "created_at", "updated_at", "closed_at",
}

// Repo provides ticket persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ticket repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a ticket by primary key.
// Returns domain.ErrNotFound if the ticket does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ticket, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, forUpdate bool) (*domain.Ticket, error) {
	q := psql.Select(columns...).From("tickets").Where(sq.Eq{"id": id})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ticket query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	t, err := scanTicket(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return t, nil
}

// List returns every ticket matching the filter, newest first.
// Set filter fields are combined with AND; an empty filter returns all tickets.
func (r *Repo) List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	q := applyFilter(psql.Select(columns...).From("tickets"), filter).
		OrderBy("created_at DESC", "id DESC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tickets query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}

	return tickets, nil
}

// applyFilter adds one WHERE predicate per set filter field.
func applyFilter(q sq.SelectBuilder, f domain.TicketFilter) sq.SelectBuilder {
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.Department != nil {
		q = q.Where(sq.Eq{"department": *f.Department})
	}
	if f.Search != nil {
		pattern := "%" + escapeLike(*f.Search) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"requester_name": pattern},
			sq.ILike{"machine": pattern},
		})
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
// Postgres uses backslash as the default LIKE escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new ticket and returns it with the store-assigned id.
func (r *Repo) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	query, args, err := psql.Insert("tickets").
		Columns(columns[1:]...).
		Values(
			t.RequesterName, t.Machine, t.Department, t.Description, t.Contact,
			string(t.Status), string(t.Priority), t.AccessKey, t.CreatedAt, t.UpdatedAt, t.ClosedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create ticket query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanTicket(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}
	return created, nil
}

// UpdateState persists status, priority, closed_at and updated_at.
// Returns domain.ErrNotFound if the ticket does not exist.
func (r *Repo) UpdateState(ctx context.Context, t *domain.Ticket) error {
	query, args, err := psql.Update("tickets").
		Set("status", string(t.Status)).
		Set("priority", string(t.Priority)).
		Set("closed_at", t.ClosedAt).
		Set("updated_at", t.UpdatedAt).
		Where(sq.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update ticket query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, t.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, t.ID, domain.ErrNotFound)
	}
	return nil
}

// touchSQL guarantees updated_at moves forward even when two writes land
// within the same microsecond.
const touchSQL = `
	UPDATE tickets
	SET updated_at = GREATEST($2::timestamptz, updated_at + interval '1 microsecond')
	WHERE id = $1
	RETURNING updated_at`

// Touch advances updated_at to at least now and returns the stored value.
// Returns domain.ErrNotFound if the ticket does not exist.
func (r *Repo) Touch(ctx context.Context, id int64, now time.Time) (time.Time, error) {
	var updatedAt time.Time
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, touchSQL, id, now).Scan(&updatedAt)
	if err != nil {
		return time.Time{}, postgres.MapError(err, entity, id)
	}
	return updatedAt.UTC(), nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		t        domain.Ticket
		status   string
		priority string
	)
	err := row.Scan(
		&t.ID, &t.RequesterName, &t.Machine, &t.Department, &t.Description, &t.Contact,
		&status, &priority, &t.AccessKey, &t.CreatedAt, &t.UpdatedAt, &t.ClosedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = domain.TicketStatus(status)
	t.Priority = domain.TicketPriority(priority)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	if t.ClosedAt != nil {
		closed := t.ClosedAt.UTC()
		t.ClosedAt = &closed
	}
	return &t, nil
}
