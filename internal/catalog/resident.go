package catalog

// ResidentServicesName is the namespace for the resident booking flow:
// move-in packages, AMC contracts and one-off call-out services.
const ResidentServicesName = "resident-services"

// DefaultResidentPackage is the fallback the booking flow applies when a
// request names a package the table does not know. The fallback is a caller
// policy, not table behaviour: Lookup itself stays exact-match.
const DefaultResidentPackage = "move-in-ready"

var residentServices = NewCatalog(ResidentServicesName, map[string]RateEntry{
	// New resident packages
	"move-in-ready": {
		BasePrice:    aed(800),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(800), Max: aed(800)},
		BulkEligible: false,
	},
	"first-month-free": {
		BasePrice:    aed(650),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(650), Max: aed(650)},
		BulkEligible: false,
	},
	"new-building-special": {
		BasePrice:    aed(750),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(750), Max: aed(750)},
		BulkEligible: false,
	},

	// Annual maintenance contracts, priced per year
	"amc-basic": {
		BasePrice:    aed(1200),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(1200), Max: aed(1200)},
		BulkEligible: false,
	},
	"amc-family": {
		BasePrice:    aed(1800),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(1800), Max: aed(1800)},
		BulkEligible: false,
	},
	"amc-premium": {
		BasePrice:    aed(2500),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(2500), Max: aed(2500)},
		BulkEligible: false,
	},

	// Individual call-out services
	"plumbing": {
		BasePrice:    aed(150),
		PriceUnit:    PerUnit,
		PriceRange:   PriceRange{Min: aed(150), Max: aed(300)},
		BulkEligible: false,
	},
	"ac-service": {
		BasePrice:    aed(200),
		PriceUnit:    PerUnit,
		PriceRange:   PriceRange{Min: aed(200), Max: aed(400)},
		BulkEligible: false,
	},
	"painting-service": {
		BasePrice:    aed(180),
		PriceUnit:    PerUnit,
		PriceRange:   PriceRange{Min: aed(180), Max: aed(360)},
		BulkEligible: false,
	},
	"electrical": {
		BasePrice:    aed(120),
		PriceUnit:    PerUnit,
		PriceRange:   PriceRange{Min: aed(120), Max: aed(240)},
		BulkEligible: false,
	},
	"general": {
		BasePrice:    aed(100),
		PriceUnit:    PerUnit,
		PriceRange:   PriceRange{Min: aed(100), Max: aed(200)},
		BulkEligible: false,
	},
})

// ResidentServices returns the resident services rate table.
func ResidentServices() *Catalog {
	return residentServices
}
