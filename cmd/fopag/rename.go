package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arqpeople/fopag-flow/internal/common"
	"github.com/arqpeople/fopag-flow/internal/payslip"
	"github.com/arqpeople/fopag-flow/internal/pdftext"
)

// Already-renamed files carry a YYYY-MM_ prefix.
var renamedPrefixRe = regexp.MustCompile(`^\d{4}-\d{2}_`)

func renameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename payslip PDFs by competency",
		Long: `Reads each payslip PDF in the input directory and renames it to
YYYY-MM_<type>_<original name>.pdf, where the type is 13_Salario or
Folha_Mensal. Files already carrying a competency prefix are skipped, and
an existing target file is never overwritten.`,
		RunE: runRename,
	}

	cmd.Flags().StringP("input", "i", "input", "Directory with payslip PDFs")
	_ = viper.BindPFlag("rename.input", cmd.Flags().Lookup("input"))

	return cmd
}

func runRename(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()
	inputDir := viper.GetString("rename.input")

	paths, err := payslip.ListDocuments(inputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w in %s", common.ErrNoDocuments, inputDir)
	}

	extractor := pdftext.NewExtractor()
	renamed, skipped := 0, 0

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := filepath.Base(path)
		if renamedPrefixRe.MatchString(name) {
			continue
		}

		text, err := extractor.ExtractText(ctx, path)
		if err != nil {
			logger.Error("could not read document", "path", path, "error", err)
			skipped++
			continue
		}

		newName, ok := standardizedName(name, text)
		if !ok {
			logger.Warn("competency not identified, skipping", "path", path)
			skipped++
			continue
		}

		target := filepath.Join(inputDir, newName)
		if _, err := os.Stat(target); err == nil {
			logger.Warn("target already exists, skipping", "target", newName)
			skipped++
			continue
		}

		if err := os.Rename(path, target); err != nil {
			logger.Error("rename failed", "path", path, "error", err)
			skipped++
			continue
		}
		logger.Info("renamed", "from", name, "to", newName)
		renamed++
	}

	logger.Info("rename complete", "renamed", renamed, "skipped", skipped)
	return nil
}

// standardizedName builds the YYYY-MM_<type>_<name>.pdf file name from a
// document's text; false when no competency could be identified.
func standardizedName(original, text string) (string, bool) {
	info := payslip.ExtractDocumentInfo(text)

	parts := strings.Split(info.CompetencyToken, "/")
	if len(parts) != 2 {
		return "", false
	}
	prefix := fmt.Sprintf("%s-%s", parts[1], parts[0])

	calcType := ""
	if info.CalculationType != nil {
		calcType = strings.ToLower(*info.CalculationType)
	}
	lowerText := strings.ToLower(text)

	payrollType := "Folha_Mensal"
	if strings.Contains(calcType, "13") || strings.Contains(calcType, "décimo") ||
		strings.Contains(lowerText, "13º") || strings.Contains(lowerText, "13o") {
		payrollType = "13_Salario"
	}

	base := strings.TrimSuffix(original, filepath.Ext(original))
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%s_%s.pdf", prefix, payrollType, base), true
}
