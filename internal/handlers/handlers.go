// Package handlers wires the pricing engine to the HTTP surface. Handlers
// are thin: bind, call into the domain packages, shape the response.
package handlers

import (
	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/installments"
	"github.com/servdubai/quote-service/internal/notify"
	"github.com/servdubai/quote-service/internal/pricing"
	"github.com/servdubai/quote-service/internal/quote"
)

// Global handler dependencies (initialized by the application)
var (
	calculators       map[string]*pricing.Calculator
	assembler         *quote.Assembler
	installmentPolicy map[string]installments.Config
	whatsappNumbers   notify.Numbers
)

// Init initializes the handler dependencies.
// This should be called during application startup.
func Init(pricingCfg *pricing.Config, construction, resident installments.Config, numbers notify.Numbers) {
	calculators = make(map[string]*pricing.Calculator)
	installmentPolicy = map[string]installments.Config{
		catalog.ConstructionFinishingName: construction,
		catalog.ResidentServicesName:      resident,
	}
	for _, name := range catalog.Names() {
		cat, _ := catalog.ByName(name)
		calculators[name] = pricing.NewCalculator(cat, pricingCfg)
	}
	assembler = quote.NewAssembler(calculators[catalog.ConstructionFinishingName])
	whatsappNumbers = numbers
}

// calculatorFor resolves the calculator for a catalog namespace.
func calculatorFor(name string) (*pricing.Calculator, bool) {
	calc, ok := calculators[name]
	return calc, ok
}
