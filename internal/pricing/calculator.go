// Package pricing turns a structured quote request into a priced, itemized
// calculation: base price from the rate table, additive component line items,
// then percentage discounts and flat surcharges.
package pricing

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/servdubai/quote-service/internal/catalog"
)

// QuoteRequest is the caller-supplied input for one calculation.
type QuoteRequest struct {
	// Selection resolves against the calculator's catalog. Unknown keys fail
	// with catalog.ErrUnknownSelection.
	Selection string `json:"selection"`

	// AreaSqm is the declared project area. Only meaningful for per-sqm
	// selections; zero means "not declared".
	AreaSqm float64 `json:"areaSqm,omitempty"`

	// Units is the unit count for bulk orders. Defaults to 1.
	Units int `json:"units,omitempty"`

	// Requirements flags the optional components requested. Keys that the
	// rate entry does not know are silently ignored so the form side can
	// ship new checkboxes before the table learns about them.
	Requirements map[string]bool `json:"requirements,omitempty"`

	// Context drives the adjustment engine.
	Context AdjustmentContext `json:"context"`
}

// BreakdownLine is one row of the itemized ledger. The ledger is append-only
// during calculation and never mutated afterwards.
type BreakdownLine struct {
	Item      string          `json:"item"`
	Quantity  float64         `json:"quantity,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// Calculation is the full output of a pricing run.
// Invariant: TotalPrice = BasePrice - Discounts.Total + Surcharges.Total,
// clamped at zero.
type Calculation struct {
	BasePrice  decimal.Decimal   `json:"basePrice"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
	PriceUnit  catalog.PriceUnit `json:"priceUnit"`
	Discounts  Discounts         `json:"discounts"`
	Surcharges Surcharges        `json:"surcharges"`
	Breakdown  []BreakdownLine   `json:"breakdown"`
}

// BaseResult is the calculator output before adjustments.
type BaseResult struct {
	BasePrice decimal.Decimal
	PriceUnit catalog.PriceUnit
	Breakdown []BreakdownLine
	Entry     catalog.RateEntry
}

// Calculator computes base prices and breakdowns against one catalog.
// It is stateless apart from its wiring and safe for concurrent use.
type Calculator struct {
	catalog *catalog.Catalog
	config  *Config
	logger  zerolog.Logger
}

// NewCalculator creates a calculator over the given catalog and policy.
func NewCalculator(cat *catalog.Catalog, cfg *Config) *Calculator {
	return &Calculator{
		catalog: cat,
		config:  cfg,
		logger:  log.With().Str("component", "calculator").Str("catalog", cat.Name()).Logger(),
	}
}

// Catalog returns the rate table this calculator prices against.
func (c *Calculator) Catalog() *catalog.Catalog {
	return c.catalog
}

// BasePrice computes the base price and itemized breakdown for one request,
// before any discounts or surcharges.
func (c *Calculator) BasePrice(req QuoteRequest) (BaseResult, error) {
	entry, err := c.catalog.Lookup(req.Selection)
	if err != nil {
		return BaseResult{}, err
	}

	units := req.Units
	if units < 1 {
		units = 1
	}

	var (
		basePrice decimal.Decimal
		breakdown []BreakdownLine
	)

	if entry.AreaScaled() && req.AreaSqm > 0 {
		area := decimal.NewFromFloat(req.AreaSqm)
		basePrice = entry.BasePrice.Mul(area)
		breakdown = append(breakdown, BreakdownLine{
			Item:      fmt.Sprintf("%s (%s)", req.Selection, entry.PriceUnit),
			Quantity:  req.AreaSqm,
			UnitPrice: entry.BasePrice,
			Total:     basePrice,
		})
	} else {
		basePrice = entry.BasePrice.Mul(decimal.NewFromInt(int64(units)))
		breakdown = append(breakdown, BreakdownLine{
			Item:      fmt.Sprintf("%s (%s)", req.Selection, entry.PriceUnit),
			Quantity:  float64(units),
			UnitPrice: entry.BasePrice,
			Total:     basePrice,
		})
	}

	// Requested components add on top of the base, scaled by area for
	// area-priced trades and by unit count otherwise. Keys are walked in
	// sorted order so the ledger is deterministic.
	for _, key := range sortedRequirementKeys(req.Requirements) {
		componentPrice, ok := entry.Components[key]
		if !ok {
			continue
		}

		var (
			componentTotal decimal.Decimal
			quantity       float64
		)
		if entry.AreaScaled() && req.AreaSqm > 0 {
			componentTotal = componentPrice.Mul(decimal.NewFromFloat(req.AreaSqm))
			quantity = req.AreaSqm
		} else {
			componentTotal = componentPrice.Mul(decimal.NewFromInt(int64(units)))
			quantity = float64(units)
		}

		basePrice = basePrice.Add(componentTotal)
		breakdown = append(breakdown, BreakdownLine{
			Item:      humanizeComponentKey(key),
			Quantity:  quantity,
			UnitPrice: componentPrice,
			Total:     componentTotal,
		})
	}

	return BaseResult{
		BasePrice: basePrice,
		PriceUnit: entry.PriceUnit,
		Breakdown: breakdown,
		Entry:     entry,
	}, nil
}

// Quote runs the full pipeline: base price, then discounts and surcharges.
func (c *Calculator) Quote(req QuoteRequest) (Calculation, error) {
	start := time.Now()

	base, err := c.BasePrice(req)
	if err != nil {
		recordQuoteError(c.catalog.Name())
		return Calculation{}, err
	}

	units := req.Units
	if units < 1 {
		units = 1
	}

	adjusted := ApplyAdjustments(base.BasePrice, units, base.Entry.BulkEligible, req.Context, c.config)

	calc := Calculation{
		BasePrice:  base.BasePrice,
		TotalPrice: adjusted.TotalPrice,
		PriceUnit:  base.PriceUnit,
		Discounts:  adjusted.Discounts,
		Surcharges: adjusted.Surcharges,
		Breakdown:  base.Breakdown,
	}

	recordQuote(c.catalog.Name(), req.Selection, calc.TotalPrice, time.Since(start))
	c.logger.Debug().
		Str("selection", req.Selection).
		Str("base", calc.BasePrice.String()).
		Str("total", calc.TotalPrice.String()).
		Msg("Quote calculated")

	return calc, nil
}

var componentKeySplit = regexp.MustCompile(`([A-Z])`)

// humanizeComponentKey turns a camelCase requirement key into lowercase words
// for the breakdown ledger, e.g. "cabinetInstallation" -> "cabinet installation".
func humanizeComponentKey(key string) string {
	return strings.TrimSpace(strings.ToLower(componentKeySplit.ReplaceAllString(key, " $1")))
}

func sortedRequirementKeys(requirements map[string]bool) []string {
	keys := make([]string, 0, len(requirements))
	for key, wanted := range requirements {
		if wanted {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
