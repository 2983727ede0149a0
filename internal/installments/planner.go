// Package installments decides how a quoted total can be split into an
// advance payment and later milestone payments. It is independent of how the
// total was derived.
package installments

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/servdubai/quote-service/internal/pkg/money"
)

// Config holds the payment-splitting policy for one service line.
type Config struct {
	// Threshold is the minimum total, in AED, that qualifies for
	// installments at all.
	Threshold int64 `mapstructure:"threshold" json:"threshold"`

	// AdvanceRate is the fraction of the total due up front.
	AdvanceRate float64 `mapstructure:"advance_rate" json:"advanceRate"`

	// MilestoneThreshold is the higher total from which a milestone-based
	// plan is offered in addition to the plain advance split.
	MilestoneThreshold int64 `mapstructure:"milestone_threshold" json:"milestoneThreshold"`

	// MilestonesEnabled gates the milestone plan entirely.
	MilestonesEnabled bool `mapstructure:"milestones_enabled" json:"milestonesEnabled"`
}

// ConstructionDefaults is the policy for construction finishing projects:
// installments from AED 5,000 with a 40% advance, milestone plans from
// AED 10,000.
func ConstructionDefaults() Config {
	return Config{
		Threshold:          5000,
		AdvanceRate:        0.40,
		MilestoneThreshold: 10000,
		MilestonesEnabled:  true,
	}
}

// ResidentDefaults is the policy for resident bookings: installments from
// AED 1,000 with a 30% advance and no milestone plans.
func ResidentDefaults() Config {
	return Config{
		Threshold:          1000,
		AdvanceRate:        0.30,
		MilestonesEnabled:  false,
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return ErrInvalidConfig{Field: "threshold", Reason: "must be non-negative"}
	}
	if c.AdvanceRate <= 0 || c.AdvanceRate >= 1 {
		return ErrInvalidConfig{Field: "advance_rate", Reason: "must be in (0, 1)"}
	}
	if c.MilestonesEnabled && c.MilestoneThreshold < c.Threshold {
		return ErrInvalidConfig{Field: "milestone_threshold", Reason: "must be >= threshold"}
	}
	return nil
}

// ErrInvalidConfig is returned when the installment configuration is invalid.
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return e.Field + ": " + e.Reason
}

// Plan is one payment-splitting option offered to the customer.
type Plan struct {
	Description     string          `json:"description"`
	AdvanceAmount   decimal.Decimal `json:"advanceAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Milestones      []string        `json:"milestones,omitempty"`
}

// Options returns the installment plans available for a total.
//
// Below the threshold there are none. Above it there is a single advance
// split. At or above the milestone threshold (when enabled) a second option
// splits the remainder 50/50 across two milestones; each amount is rounded
// independently with the final payment absorbing the rounding remainder, so
// the three amounts always sum to the total.
func Options(total decimal.Decimal, cfg Config) []Plan {
	if total.LessThan(decimal.NewFromInt(cfg.Threshold)) {
		return []Plan{}
	}

	advance := total.Mul(decimal.NewFromFloat(cfg.AdvanceRate)).Round(0)
	remaining := total.Sub(advance)

	plans := []Plan{{
		Description:     fmt.Sprintf("%d%% Advance Payment", int(math.Round(cfg.AdvanceRate*100))),
		AdvanceAmount:   advance,
		RemainingAmount: remaining,
	}}

	if cfg.MilestonesEnabled && total.GreaterThanOrEqual(decimal.NewFromInt(cfg.MilestoneThreshold)) {
		milestone := remaining.Mul(decimal.NewFromFloat(0.5)).Round(0)
		final := remaining.Sub(milestone)

		plans = append(plans, Plan{
			Description:     "Milestone-based Payment Plan",
			AdvanceAmount:   advance,
			RemainingAmount: remaining,
			Milestones: []string{
				"Advance: " + money.FormatAED(advance),
				"50% completion: " + money.FormatAED(milestone),
				"Project completion: " + money.FormatAED(final),
			},
		})
	}

	return plans
}
