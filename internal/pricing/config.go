package pricing

// Config holds the discount and surcharge policy applied on top of base
// prices. It is passed in explicitly; there is no ambient global, so two
// callers can run different policies side by side.
type Config struct {
	// Bulk discount tiers, checked against unit count. The highest
	// qualifying tier wins; tiers never stack with each other.
	BulkMinUnits      int     `mapstructure:"bulk_min_units" json:"bulkMinUnits"`
	BulkRate          float64 `mapstructure:"bulk_rate" json:"bulkRate"`
	DeveloperMinUnits int     `mapstructure:"developer_min_units" json:"developerMinUnits"`
	DeveloperRate     float64 `mapstructure:"developer_rate" json:"developerRate"`

	// Flat percentage discounts, each gated by a context flag.
	ContractRate float64 `mapstructure:"contract_rate" json:"contractRate"`
	ReferralRate float64 `mapstructure:"referral_rate" json:"referralRate"`

	// Flat surcharge fees in AED, not percentages.
	UrgentSurcharge     int64 `mapstructure:"urgent_surcharge" json:"urgentSurcharge"`
	WeekendSurcharge    int64 `mapstructure:"weekend_surcharge" json:"weekendSurcharge"`
	AfterHoursSurcharge int64 `mapstructure:"after_hours_surcharge" json:"afterHoursSurcharge"`
}

// DefaultConfig returns the published ServDubai policy: 15% from 5 units,
// 20% from 20 units, 10% for contract customers, 5% for referrals, and
// AED 200/100/150 urgent/weekend/after-hours fees.
func DefaultConfig() *Config {
	return &Config{
		BulkMinUnits:        5,
		BulkRate:            0.15,
		DeveloperMinUnits:   20,
		DeveloperRate:       0.20,
		ContractRate:        0.10,
		ReferralRate:        0.05,
		UrgentSurcharge:     200,
		WeekendSurcharge:    100,
		AfterHoursSurcharge: 150,
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.BulkMinUnits < 1 {
		return ErrInvalidConfig{Field: "bulk_min_units", Reason: "must be at least 1"}
	}
	if c.DeveloperMinUnits <= c.BulkMinUnits {
		return ErrInvalidConfig{Field: "developer_min_units", Reason: "must be greater than bulk_min_units"}
	}
	for field, rate := range map[string]float64{
		"bulk_rate":      c.BulkRate,
		"developer_rate": c.DeveloperRate,
		"contract_rate":  c.ContractRate,
		"referral_rate":  c.ReferralRate,
	} {
		if rate < 0 || rate >= 1 {
			return ErrInvalidConfig{Field: field, Reason: "must be in [0, 1)"}
		}
	}
	if c.DeveloperRate < c.BulkRate {
		return ErrInvalidConfig{Field: "developer_rate", Reason: "must be >= bulk_rate"}
	}
	for field, fee := range map[string]int64{
		"urgent_surcharge":      c.UrgentSurcharge,
		"weekend_surcharge":     c.WeekendSurcharge,
		"after_hours_surcharge": c.AfterHoursSurcharge,
	} {
		if fee < 0 {
			return ErrInvalidConfig{Field: field, Reason: "must be non-negative"}
		}
	}
	return nil
}

// ErrInvalidConfig is returned when the pricing configuration is invalid.
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return e.Field + ": " + e.Reason
}

// ErrInvalidRequest is returned when a quote request is structurally invalid.
type ErrInvalidRequest struct {
	Field  string
	Reason string
}

func (e ErrInvalidRequest) Error() string {
	return e.Field + ": " + e.Reason
}
