package pricing

import "github.com/shopspring/decimal"

// AdjustmentContext carries the flags that gate discounts and surcharges.
type AdjustmentContext struct {
	IsUrgent     bool `json:"isUrgent,omitempty"`
	IsWeekend    bool `json:"isWeekend,omitempty"`
	IsAfterHours bool `json:"isAfterHours,omitempty"`
	HasContract  bool `json:"hasContract,omitempty"`
	IsReferral   bool `json:"isReferral,omitempty"`
}

// Discounts itemizes the percentage reductions applied to a base price.
// Invariant: Total is always the sum of the three components; each component
// is zero when its trigger is off.
type Discounts struct {
	Bulk     decimal.Decimal `json:"bulkDiscount"`
	Contract decimal.Decimal `json:"contractDiscount"`
	Referral decimal.Decimal `json:"referralDiscount"`
	Total    decimal.Decimal `json:"totalDiscount"`
}

// Surcharges itemizes the flat fees added on top. Same additive-total
// invariant as Discounts.
type Surcharges struct {
	UrgentProject decimal.Decimal `json:"urgentProject"`
	Weekend       decimal.Decimal `json:"weekend"`
	AfterHours    decimal.Decimal `json:"afterHours"`
	Total         decimal.Decimal `json:"totalSurcharge"`
}

// Adjusted is the output of the adjustment engine.
type Adjusted struct {
	Discounts  Discounts
	Surcharges Surcharges
	TotalPrice decimal.Decimal
}

// ApplyAdjustments applies the discount and surcharge policy to a base price.
//
// All percentage discounts are computed off the same base price and summed,
// not compounded: a 20-unit contract referral order gets 20%+10%+5% = 35%
// off. Surcharges are flat fees. The final total is clamped at zero so that
// extreme discount stacking can never produce a negative price.
func ApplyAdjustments(basePrice decimal.Decimal, units int, bulkEligible bool, ctx AdjustmentContext, cfg *Config) Adjusted {
	var d Discounts

	// Highest qualifying bulk tier wins; tiers do not stack.
	if bulkEligible {
		switch {
		case units >= cfg.DeveloperMinUnits:
			d.Bulk = basePrice.Mul(decimal.NewFromFloat(cfg.DeveloperRate))
		case units >= cfg.BulkMinUnits:
			d.Bulk = basePrice.Mul(decimal.NewFromFloat(cfg.BulkRate))
		}
	}

	if ctx.HasContract {
		d.Contract = basePrice.Mul(decimal.NewFromFloat(cfg.ContractRate))
	}
	if ctx.IsReferral {
		d.Referral = basePrice.Mul(decimal.NewFromFloat(cfg.ReferralRate))
	}
	d.Total = d.Bulk.Add(d.Contract).Add(d.Referral)

	var s Surcharges
	if ctx.IsUrgent {
		s.UrgentProject = decimal.NewFromInt(cfg.UrgentSurcharge)
	}
	if ctx.IsWeekend {
		s.Weekend = decimal.NewFromInt(cfg.WeekendSurcharge)
	}
	if ctx.IsAfterHours {
		s.AfterHours = decimal.NewFromInt(cfg.AfterHoursSurcharge)
	}
	s.Total = s.UrgentProject.Add(s.Weekend).Add(s.AfterHours)

	total := basePrice.Sub(d.Total).Add(s.Total)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Adjusted{
		Discounts:  d,
		Surcharges: s,
		TotalPrice: total,
	}
}
