package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/pkg/money"
)

var ratesOutput string

// ratesCmd represents the rates command
var ratesCmd = &cobra.Command{
	Use:   "rates [catalog]",
	Short: "List the rate table for a catalog",
	Long: `List the rate table for a catalog namespace. Without an argument all
catalog namespaces are listed. Known namespaces: ` + strings.Join(catalog.Names(), ", ") + `.`,
	Example: `  quote-service rates
  quote-service rates construction-finishing
  quote-service rates resident-services --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)

	ratesCmd.Flags().StringVar(&ratesOutput, "output", "table", "Output format: table or json")
}

func runRates(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return nil
	}

	name := args[0]
	cat, ok := catalog.ByName(name)
	if !ok {
		return fmt.Errorf("unknown catalog: %s\nValid catalogs: %s", name, strings.Join(catalog.Names(), ", "))
	}

	switch strings.ToLower(ratesOutput) {
	case "json":
		return outputRatesJSON(cat)
	case "table":
		outputRatesTable(cat)
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", ratesOutput)
	}

	return nil
}

func outputRatesTable(cat *catalog.Catalog) {
	fmt.Printf("\nRate table: %s\n", cat.Name())
	fmt.Println(strings.Repeat("-", 60))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Selection\tBase Price\tUnit\tRange\tBulk\tComponents\n")
	fmt.Fprintf(w, "---------\t----------\t----\t-----\t----\t----------\n")
	for _, key := range cat.Keys() {
		entry, err := cat.Lookup(key)
		if err != nil {
			continue
		}
		bulk := "no"
		if entry.BulkEligible {
			bulk = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			key,
			money.FormatAED(entry.BasePrice),
			entry.PriceUnit,
			money.FormatRange(entry.PriceRange.Min, entry.PriceRange.Max),
			bulk,
			len(entry.Components),
		)
	}
	w.Flush()
}

func outputRatesJSON(cat *catalog.Catalog) error {
	entries := make(map[string]catalog.RateEntry, len(cat.Keys()))
	for _, key := range cat.Keys() {
		entry, err := cat.Lookup(key)
		if err != nil {
			continue
		}
		entries[key] = entry
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"catalog": cat.Name(),
		"entries": entries,
	})
}
