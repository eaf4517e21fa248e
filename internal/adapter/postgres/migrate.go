package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/helpdesk-backend/migrations"
)

// Migrator applies the embedded goose migrations.
// goose needs a *sql.DB, so it opens its own short-lived connection via the
// pgx stdlib driver instead of borrowing from the pool.
type Migrator struct {
	dsn string
	log *slog.Logger
}

// NewMigrator creates a Migrator for the given DSN.
func NewMigrator(dsn string, log *slog.Logger) *Migrator {
	return &Migrator{dsn: dsn, log: log.With("component", "migrator")}
}

// Up applies all pending migrations and returns how many were applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	var applied int
	err := m.withProvider(ctx, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			m.log.InfoContext(ctx, "migration applied",
				slog.Int64("version", r.Source.Version),
				slog.String("file", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		applied = len(results)
		return nil
	})
	return applied, err
}

// MigrationState describes one migration file and whether it is applied.
type MigrationState struct {
	Version int64
	File    string
	Applied bool
}

// Status lists every known migration with its applied state.
func (m *Migrator) Status(ctx context.Context) ([]MigrationState, error) {
	var out []MigrationState
	err := m.withProvider(ctx, func(p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		out = make([]MigrationState, 0, len(statuses))
		for _, s := range statuses {
			out = append(out, MigrationState{
				Version: s.Source.Version,
				File:    s.Source.Path,
				Applied: s.State == goose.StateApplied,
			})
		}
		return nil
	})
	return out, err
}

func (m *Migrator) withProvider(ctx context.Context, fn func(p *goose.Provider) error) error {
	db, err := sql.Open("pgx", m.dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping migration connection: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	return fn(provider)
}
