package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
					applied, err := m.Up(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "migrate up: %d applied\n", applied)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
					states, err := m.Status(ctx)
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "VERSION\tFILE\tSTATE")
					for _, s := range states {
						state := "pending"
						if s.Applied {
							state = "applied"
						}
						fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, s.File, state)
					}
					return tw.Flush()
				})
			},
		},
	)
	return cmd
}
