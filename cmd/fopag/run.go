package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arqpeople/fopag-flow/internal/common"
	"github.com/arqpeople/fopag-flow/internal/export"
	"github.com/arqpeople/fopag-flow/internal/hr"
	"github.com/arqpeople/fopag-flow/internal/payslip"
	"github.com/arqpeople/fopag-flow/internal/pdftext"
	"github.com/arqpeople/fopag-flow/internal/solides"
	"github.com/arqpeople/fopag-flow/internal/warehouse"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full payroll pipeline",
		Long: `Runs every pipeline stage in order: calendar dimension, payslip PDF
extraction with CSV export and warehouse load, HR API sync, and the
transferred-status post-processing.`,
		RunE: runPipeline,
	}

	cmd.Flags().StringP("input", "i", "input", "Directory with payslip PDFs")
	cmd.Flags().StringP("output", "o", "output", "Directory for the generated CSVs")

	_ = viper.BindPFlag("run.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("run.output", cmd.Flags().Lookup("output"))

	return cmd
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()
	inputDir := viper.GetString("run.input")
	outputDir := viper.GetString("run.output")

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
	if err := store.LoadCalendar(ctx); err != nil {
		return err
	}

	// Payslip extraction. An empty or barren input directory is a warning,
	// not a failure: the HR sync still runs.
	processor := payslip.NewProcessor(pdftext.NewExtractor(), logger)
	result, _, err := processor.ProcessDirectory(ctx, inputDir)
	switch {
	case errors.Is(err, common.ErrNoDocuments), errors.Is(err, common.ErrNoDataExtracted):
		logger.Warn("no payroll data extracted", "input", inputDir, "reason", err)
	case err != nil:
		return err
	default:
		writer := export.NewWriter(outputDir)
		if _, err := writer.WriteConsolidated(result.Summaries); err != nil {
			return err
		}
		if len(result.Details) > 0 {
			if _, err := writer.WriteDetailed(result.Details); err != nil {
				return err
			}
		}
		logger.Info("csv files written", "output", outputDir)

		if err := store.LoadPayroll(ctx, result.Summaries, result.Details); err != nil {
			return err
		}
	}

	// HR sync is optional: without a token the payroll-only pipeline still
	// makes sense.
	token := viper.GetString("solides.token")
	if token == "" {
		logger.Warn("solides token not configured, skipping hr sync")
	} else {
		client, err := solides.NewClient(token, logger)
		if err != nil {
			return err
		}
		records, err := client.FetchEmployees(ctx)
		if err != nil {
			return common.NewUserError("could not fetch employees from the hr api", err)
		}
		employees, benefits := hr.Transform(records)
		if err := store.LoadEmployees(ctx, employees, benefits); err != nil {
			return err
		}
	}

	if err := store.MarkTransferred(ctx); err != nil {
		return err
	}

	logger.Info("pipeline finished")
	return nil
}
