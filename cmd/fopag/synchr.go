package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arqpeople/fopag-flow/internal/common"
	"github.com/arqpeople/fopag-flow/internal/hr"
	"github.com/arqpeople/fopag-flow/internal/solides"
	"github.com/arqpeople/fopag-flow/internal/warehouse"
)

func syncHRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-hr",
		Short: "Sync employee master data from the HR API",
		Long: `Fetches every collaborator and their benefits from the Sólides API and
merges them into the warehouse dimensions.`,
		RunE: runSyncHR,
	}
}

func runSyncHR(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	token := viper.GetString("solides.token")
	if token == "" {
		return fmt.Errorf("%w: SOLIDES_API_TOKEN", common.ErrMissingConfig)
	}

	client, err := solides.NewClient(token, logger)
	if err != nil {
		return err
	}

	records, err := client.FetchEmployees(ctx)
	if err != nil {
		return common.NewUserError("could not fetch employees from the hr api", err)
	}
	if len(records) == 0 {
		logger.Warn("hr api returned no collaborators")
		return nil
	}

	employees, benefits := hr.Transform(records)
	logger.Info("hr data transformed",
		"employees", len(employees),
		"benefits", len(benefits))

	dsn, schema, err := warehouseConfig()
	if err != nil {
		return err
	}
	store, err := warehouse.New(ctx, dsn, schema, logger)
	if err != nil {
		return common.NewUserError("could not connect to the warehouse", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	return store.LoadEmployees(ctx, employees, benefits)
}
