// Package catalog holds the static rate tables the pricing engine works from.
//
// Rates are keyed by a service, project type or package slug inside a named
// catalog. Catalogs are built once at init and never mutated afterwards, so
// lookups are safe from any goroutine.
package catalog

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// PriceUnit determines how a RateEntry's base price scales with quantity.
type PriceUnit string

const (
	PerProject PriceUnit = "per project"
	PerSqm     PriceUnit = "per sqm"
	PerUnit    PriceUnit = "per unit"
	PerPackage PriceUnit = "per package"
)

// PriceRange is the advisory min/max band published alongside a rate.
// It is marketing guidance, independent of any computed total.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// RateEntry is the pricing definition for one sellable unit.
type RateEntry struct {
	// BasePrice is the price per PriceUnit. Always > 0.
	BasePrice decimal.Decimal `json:"basePrice"`

	// PriceUnit determines whether BasePrice multiplies by area, unit count,
	// or stands alone.
	PriceUnit PriceUnit `json:"priceUnit"`

	// PriceRange is the advisory band for this entry.
	PriceRange PriceRange `json:"priceRange"`

	// Components are optional additive line items (e.g. cabinet installation
	// on top of a kitchen project), keyed by camelCase requirement key.
	Components map[string]decimal.Decimal `json:"components,omitempty"`

	// BulkEligible controls whether bulk discount tiers apply. Packages that
	// are already aggressively priced opt out.
	BulkEligible bool `json:"bulkEligible"`

	// Includes lists the service slugs bundled into a package entry.
	Includes []string `json:"includes,omitempty"`
}

// AreaScaled reports whether this entry's price (and its components) scale
// with declared project area rather than unit count.
func (e RateEntry) AreaScaled() bool {
	return e.PriceUnit == PerSqm
}

// ErrUnknownSelection is returned when a selection key has no rate entry.
type ErrUnknownSelection struct {
	Catalog string
	Key     string
}

func (e ErrUnknownSelection) Error() string {
	return fmt.Sprintf("catalog %s: unknown selection %q", e.Catalog, e.Key)
}

// Catalog is an immutable, named collection of rate entries.
type Catalog struct {
	name    string
	entries map[string]RateEntry
}

// NewCatalog builds a catalog from a fixed entry set.
func NewCatalog(name string, entries map[string]RateEntry) *Catalog {
	return &Catalog{name: name, entries: entries}
}

// Name returns the catalog namespace, e.g. "construction-finishing".
func (c *Catalog) Name() string {
	return c.name
}

// Lookup resolves a selection key. Matching is exact and case-sensitive;
// callers that want a fallback-to-default policy layer it themselves.
func (c *Catalog) Lookup(key string) (RateEntry, error) {
	entry, ok := c.entries[key]
	if !ok {
		return RateEntry{}, ErrUnknownSelection{Catalog: c.name, Key: key}
	}
	return entry, nil
}

// Has reports whether a selection key exists.
func (c *Catalog) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Keys returns all selection keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ByName resolves a catalog namespace. The two namespaces are deliberately
// separate: the business runs parallel price lists for resident
// bookings and B2B construction finishing that had drifted apart.
func ByName(name string) (*Catalog, bool) {
	switch name {
	case ConstructionFinishingName:
		return ConstructionFinishing(), true
	case ResidentServicesName:
		return ResidentServices(), true
	}
	return nil, false
}

// Names lists the known catalog namespaces.
func Names() []string {
	return []string{ConstructionFinishingName, ResidentServicesName}
}
