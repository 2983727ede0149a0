package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/installments"
	"github.com/servdubai/quote-service/internal/pkg/money"
	"github.com/servdubai/quote-service/internal/pricing"
	"github.com/servdubai/quote-service/internal/quote"
)

var (
	quoteOutput      string
	quoteConcurrency int
)

// quotedFile pairs an input file with its generated quote.
type quotedFile struct {
	File               string              `json:"file"`
	Quote              quote.Quote         `json:"quote"`
	InstallmentOptions []installments.Plan `json:"installmentOptions"`
}

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <assessment.json> [assessment.json...]",
	Short: "Generate quotes for assessment files",
	Long: `Generate quotes for one or more project assessment JSON files. Each file
holds a single assessment as submitted by the site form. Files are priced
concurrently and results are printed in input order.`,
	Example: `  quote-service quote ./assessments/villa-kitchen.json
  quote-service quote ./assessments/*.json --output json --concurrency 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteOutput, "output", "table", "Output format: table or json")
	quoteCmd.Flags().IntVar(&quoteConcurrency, "concurrency", 4, "Number of files priced in parallel")
}

func runQuote(cmd *cobra.Command, args []string) error {
	pricingCfg := pricing.DefaultConfig()
	installmentCfg := installments.ConstructionDefaults()
	if cfg != nil {
		pricingCfg = &cfg.Pricing
		installmentCfg = cfg.Installments.Construction
	}

	calc := pricing.NewCalculator(catalog.ConstructionFinishing(), pricingCfg)
	assembler := quote.NewAssembler(calc)

	results := make([]quotedFile, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(quoteConcurrency)

	for i, file := range args {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			var assessment quote.Assessment
			if err := json.Unmarshal(content, &assessment); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			q, err := assembler.Generate(assessment)
			if err != nil {
				return fmt.Errorf("quote %s: %w", file, err)
			}

			results[i] = quotedFile{
				File:               file,
				Quote:              q,
				InstallmentOptions: installments.Options(q.Breakdown.TotalPrice, installmentCfg),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	switch strings.ToLower(quoteOutput) {
	case "json":
		return outputQuoteJSON(results)
	case "table":
		outputQuoteTable(results)
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", quoteOutput)
	}

	return nil
}

func outputQuoteTable(results []quotedFile) {
	fmt.Printf("\nQuotes for %d assessment(s)\n", len(results))
	fmt.Println(strings.Repeat("-", 60))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "File\tQuote ID\tBase\tTotal\tRange\tPlans\n")
	fmt.Fprintf(w, "----\t--------\t----\t-----\t-----\t-----\n")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			r.File,
			r.Quote.ID,
			money.FormatAED(r.Quote.Breakdown.BasePrice),
			money.FormatAED(r.Quote.Breakdown.TotalPrice),
			money.FormatRange(r.Quote.EstimatedRange.Min, r.Quote.EstimatedRange.Max),
			len(r.InstallmentOptions),
		)
	}
	w.Flush()
}

func outputQuoteJSON(results []quotedFile) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
