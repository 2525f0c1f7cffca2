package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edocuenta/edocuenta/internal/export"
	"github.com/edocuenta/edocuenta/internal/extract"
	"github.com/edocuenta/edocuenta/internal/profile"
)

func newExtractCommand() *cobra.Command {
	var bank string
	var output string
	var format string
	var overlays []string

	cmd := &cobra.Command{
		Use:   "extract <statement.pdf>",
		Short: "Extract the transaction table from a statement PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runExtract(path, bank, output, format, overlays)
		},
	}

	cmd.Flags().StringVar(&bank, "bank", "", "statement bank (required, see 'edocuenta banks')")
	_ = cmd.MarkFlagRequired("bank")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "output format: csv or xlsx (default: from output extension, else csv)")
	cmd.Flags().StringArrayVar(&overlays, "profile", nil, "profile overlay YAML file (repeatable)")

	return cmd
}

func runExtract(path, bank, output, format string, overlays []string) error {
	reg := profile.DefaultRegistry()
	for _, overlay := range overlays {
		o, err := profile.LoadOverrides(overlay)
		if err != nil {
			return err
		}
		if err := reg.Apply(o); err != nil {
			return fmt.Errorf("applying %s: %w", overlay, err)
		}
		slog.Debug("applied profile overlay", "file", overlay, "bank", o.Bank, "variant", o.Variant)
	}

	slog.Debug("extracting statement", "path", path, "bank", bank)
	movs, err := extract.StatementFrom(reg, path, bank)
	if err != nil {
		return err
	}
	slog.Debug("extraction complete", "movements", len(movs))

	switch resolveFormat(format, output) {
	case "xlsx":
		if output == "" {
			return fmt.Errorf("xlsx output requires --output")
		}
		return export.SaveXLSX(output, movs)
	case "csv":
		if output == "" {
			return export.WriteCSV(os.Stdout, movs)
		}
		return export.SaveCSV(output, movs)
	default:
		return fmt.Errorf("unknown format %q (want csv or xlsx)", format)
	}
}

func resolveFormat(format, output string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.EqualFold(filepath.Ext(output), ".xlsx") {
		return "xlsx"
	}
	return "csv"
}
