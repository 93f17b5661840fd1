package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arqpeople/fopag-flow/internal/common"
	"github.com/arqpeople/fopag-flow/internal/warehouse"
)

func calendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Load the calendar dimension",
		Long:  `Creates and fills the warehouse calendar dimension (2023 through 2030).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			dsn, schema, err := warehouseConfig()
			if err != nil {
				return err
			}
			store, err := warehouse.New(ctx, dsn, schema, slog.Default())
			if err != nil {
				return common.NewUserError("could not connect to the warehouse", err)
			}
			defer store.Close()

			if err := store.EnsureSchema(ctx); err != nil {
				return err
			}
			return store.LoadCalendar(ctx)
		},
	}
}
