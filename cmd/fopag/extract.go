package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arqpeople/fopag-flow/internal/common"
	"github.com/arqpeople/fopag-flow/internal/export"
	"github.com/arqpeople/fopag-flow/internal/payslip"
	"github.com/arqpeople/fopag-flow/internal/pdftext"
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract payslip PDFs to CSV",
		Long: `Parses every payslip PDF in the input directory and writes the
consolidated and detailed CSV files, without touching the warehouse.`,
		RunE: runExtract,
	}

	cmd.Flags().StringP("input", "i", "input", "Directory with payslip PDFs")
	cmd.Flags().StringP("output", "o", "output", "Directory for the generated CSVs")
	cmd.Flags().Bool("dry-run", false, "Parse and report counts without writing files")

	_ = viper.BindPFlag("extract.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("extract.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("extract.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()
	inputDir := viper.GetString("extract.input")
	outputDir := viper.GetString("extract.output")
	dryRun := viper.GetBool("extract.dry_run")

	paths, err := payslip.ListDocuments(inputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w in %s", common.ErrNoDocuments, inputDir)
	}

	processor := payslip.NewProcessor(pdftext.NewExtractor(), logger)
	bar := progressbar.Default(int64(len(paths)), "extracting")

	var result payslip.Result
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		docResult, err := processor.ProcessDocument(ctx, path)
		if err != nil {
			logger.Error("document extraction failed", "path", path, "error", err)
			_ = bar.Add(1)
			continue
		}

		result.Summaries = append(result.Summaries, docResult.Summaries...)
		result.Details = append(result.Details, docResult.Details...)
		logger.Debug("document processed",
			"path", filepath.Base(path),
			"blocks", len(docResult.Summaries))
		_ = bar.Add(1)
	}

	if len(result.Summaries) == 0 {
		return common.ErrNoDataExtracted
	}

	logger.Info("extraction complete",
		"documents", len(paths),
		"employees", len(result.Summaries),
		"line_items", len(result.Details))

	if dryRun {
		logger.Info("dry run, skipping csv output")
		return nil
	}

	writer := export.NewWriter(outputDir)
	consolPath, err := writer.WriteConsolidated(result.Summaries)
	if err != nil {
		return err
	}
	logger.Info("csv written", "path", consolPath)

	if len(result.Details) > 0 {
		detailPath, err := writer.WriteDetailed(result.Details)
		if err != nil {
			return err
		}
		logger.Info("csv written", "path", detailPath)
	}
	return nil
}
