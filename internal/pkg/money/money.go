// Package money formats AED amounts for customer-facing output. The business
// quotes in a single currency with whole-number display amounts, so there is
// no conversion here, only rounding and thousands grouping.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is the only currency the business quotes in.
const Currency = "AED"

var printer = message.NewPrinter(language.English)

// FormatAED renders an amount as "AED 1,234". Amounts are rounded to whole
// dirhams for display; the underlying decimals keep full precision.
func FormatAED(amount decimal.Decimal) string {
	return printer.Sprintf("%s %d", Currency, amount.Round(0).IntPart())
}

// FormatRange renders a min/max band as "AED 2,000 - AED 3,000".
func FormatRange(min, max decimal.Decimal) string {
	return FormatAED(min) + " - " + FormatAED(max)
}
