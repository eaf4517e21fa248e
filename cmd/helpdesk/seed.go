package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/helpdesk-backend/internal/app"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo tickets",
		Long:  "Insert three demo tickets and print their ids and access keys.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			seeded, err := app.Seed(ctx, pool, logger)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tACCESS KEY")
			for _, s := range seeded {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.Status, s.AccessKey)
			}
			return tw.Flush()
		},
	}
}
