// Package quote assembles customer-facing quotes: it runs the pricing
// pipeline over an assessment, widens the point estimate into an advisory
// range, attaches a reference ID and emits follow-up recommendations.
package quote

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/servdubai/quote-service/internal/pkg/money"
	"github.com/servdubai/quote-service/internal/pkg/refid"
	"github.com/servdubai/quote-service/internal/pricing"
)

// IDPrefix tags quote reference IDs.
const IDPrefix = "QT"

// rangeSpread is the ± band applied around the point estimate. The published
// range is an estimate; the firm number comes after a site visit.
const rangeSpread = 0.2

// phasedAreaThreshold is the area above which phased implementation is
// suggested.
const phasedAreaThreshold = 100.0

// EstimatedRange is the advisory min/max band around the point estimate.
type EstimatedRange struct {
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Currency string          `json:"currency"`
}

// Quote is the top-level output handed to callers.
type Quote struct {
	ID              string              `json:"id"`
	EstimatedRange  EstimatedRange      `json:"estimatedRange"`
	Breakdown       pricing.Calculation `json:"breakdown"`
	Recommendations []string            `json:"recommendations"`
}

// Assembler orchestrates the calculator for assessment submissions.
type Assembler struct {
	calc   *pricing.Calculator
	logger zerolog.Logger
}

// NewAssembler creates an assembler over the given calculator.
func NewAssembler(calc *pricing.Calculator) *Assembler {
	return &Assembler{
		calc:   calc,
		logger: log.With().Str("component", "quote_assembler").Logger(),
	}
}

// Generate prices an assessment and wraps the result into a quote.
//
// The range is a fixed ±20% band around the computed total, rounded to whole
// dirhams. It is deliberately not derived from the rate entry's own price
// range, which is marketing guidance rather than a function of this project.
func (a *Assembler) Generate(assessment Assessment) (Quote, error) {
	area, units := assessment.Quantities()

	req := pricing.QuoteRequest{
		Selection:    assessment.ProjectType,
		AreaSqm:      area,
		Units:        units,
		Requirements: assessment.Requirements(),
		Context: pricing.AdjustmentContext{
			IsUrgent:    assessment.IsUrgent(),
			IsWeekend:   assessment.IsWeekend(),
			HasContract: assessment.HasContract(),
			IsReferral:  assessment.IsReferral(),
		},
	}

	calc, err := a.calc.Quote(req)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{
		ID: refid.New(IDPrefix),
		EstimatedRange: EstimatedRange{
			Min:      calc.TotalPrice.Mul(decimal.NewFromFloat(1 - rangeSpread)).Round(0),
			Max:      calc.TotalPrice.Mul(decimal.NewFromFloat(1 + rangeSpread)).Round(0),
			Currency: money.Currency,
		},
		Breakdown:       calc,
		Recommendations: recommendations(assessment, calc, area, units),
	}

	a.logger.Info().
		Str("quoteId", q.ID).
		Str("projectType", assessment.ProjectType).
		Str("total", calc.TotalPrice.String()).
		Msg("Quote generated")

	return q, nil
}

// recommendations produces the advisory strings shown under the quote.
func recommendations(assessment Assessment, calc pricing.Calculation, area float64, units int) []string {
	var recs []string

	if units >= 5 {
		recs = append(recs, fmt.Sprintf(
			"Bulk discount available: Save up to %s on %d units",
			money.FormatAED(calc.Discounts.Bulk), units))
	}
	if assessment.HasContract() {
		recs = append(recs, "Contract customer discount available for ongoing projects")
	}
	if area > phasedAreaThreshold {
		recs = append(recs, "Large area project - consider phased implementation for better scheduling")
	}

	recs = append(recs,
		"Site visit recommended for accurate quote and timeline",
		"All materials and labor included in quoted price",
	)

	return recs
}
