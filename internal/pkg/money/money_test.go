package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAED(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		expected string
	}{
		{decimal.Zero, "AED 0"},
		{decimal.NewFromInt(800), "AED 800"},
		{decimal.NewFromInt(2500), "AED 2,500"},
		{decimal.NewFromInt(1250000), "AED 1,250,000"},
		{decimal.NewFromFloat(2499.6), "AED 2,500"},
	}

	for _, tt := range tests {
		if got := FormatAED(tt.amount); got != tt.expected {
			t.Errorf("FormatAED(%s) = %q, want %q", tt.amount, got, tt.expected)
		}
	}
}

func TestFormatRange(t *testing.T) {
	got := FormatRange(decimal.NewFromInt(2000), decimal.NewFromInt(3000))
	if got != "AED 2,000 - AED 3,000" {
		t.Errorf("FormatRange = %q", got)
	}
}
