package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/export"
)

var exportFile string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the rate tables as an XLSX rate card",
	Long: `Export all rate tables into a single XLSX workbook, one sheet per
catalog namespace, for the sales team.`,
	Example: `  quote-service export
  quote-service export --file ./rates.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFile, "file", "", "Output file (default servdubai-rates-<date>.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	target := exportFile
	if target == "" {
		target = "servdubai-rates-" + time.Now().Format("2006-01-02") + ".xlsx"
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer f.Close()

	if err := export.WriteRateCard(f, catalog.Names()); err != nil {
		return fmt.Errorf("export rate card: %w", err)
	}

	logger.Info().Str("file", target).Msg("Rate card exported")
	return nil
}
