package catalog

import "github.com/shopspring/decimal"

// ConstructionFinishingName is the namespace for B2B construction finishing
// rates: per-project fit-outs, per-sqm trades, and developer packages.
const ConstructionFinishingName = "construction-finishing"

var constructionFinishing = NewCatalog(ConstructionFinishingName, map[string]RateEntry{
	"kitchen": {
		BasePrice:    aed(2500),
		PriceUnit:    PerProject,
		PriceRange:   PriceRange{Min: aed(2500), Max: aed(8000)},
		BulkEligible: true,
		Components: map[string]decimal.Decimal{
			"cabinetInstallation":    aed(800),
			"countertopInstallation": aed(600),
			"applianceConnections":   aed(400),
			"plumbingWork":           aed(500),
			"electricalConnections":  aed(300),
			"customStorage":          aed(400),
		},
	},
	"bathroom": {
		BasePrice:    aed(1800),
		PriceUnit:    PerProject,
		PriceRange:   PriceRange{Min: aed(1800), Max: aed(6000)},
		BulkEligible: true,
		Components: map[string]decimal.Decimal{
			"showerBathtubInstallation": aed(600),
			"toiletSinkInstallation":    aed(400),
			"tileMarbleInstallation":    aed(500),
			"plumbingConnections":       aed(400),
			"mirrorCabinetInstallation": aed(300),
			"waterproofing":             aed(200),
		},
	},
	"flooring": {
		BasePrice:    aed(80),
		PriceUnit:    PerSqm,
		PriceRange:   PriceRange{Min: aed(80), Max: aed(200)},
		BulkEligible: true,
		Components: map[string]decimal.Decimal{
			"marbleInstallation":  aed(120),
			"graniteInstallation": aed(100),
			"ceramicTiling":       aed(80),
			"floorPolishing":      aed(30),
			"surfacePreparation":  aed(25),
		},
	},
	"woodwork": {
		BasePrice:    aed(1200),
		PriceUnit:    PerProject,
		PriceRange:   PriceRange{Min: aed(1200), Max: aed(5000)},
		BulkEligible: true,
		Components: map[string]decimal.Decimal{
			"builtInWardrobes": aed(800),
			"customCabinets":   aed(600),
			"doorFinishing":    aed(300),
			"woodenFlooring":   aed(150), // per sqm
			"customCarpentry":  aed(400),
		},
	},
	"painting": {
		BasePrice:    aed(25),
		PriceUnit:    PerSqm,
		PriceRange:   PriceRange{Min: aed(25), Max: aed(60)},
		BulkEligible: true,
		Components: map[string]decimal.Decimal{
			"interiorPainting":   aed(25),
			"exteriorPainting":   aed(35),
			"primerApplication":  aed(15),
			"decorativeFinishes": aed(45),
			"touchUpWork":        aed(20),
		},
	},
	"ac": {
		BasePrice:    aed(800),
		PriceUnit:    PerUnit,
		PriceRange:   PriceRange{Min: aed(800), Max: aed(3000)},
		BulkEligible: true,
		Components: map[string]decimal.Decimal{
			"splitAcInstallation":    aed(800),
			"centralAcSetup":         aed(1500),
			"ductwork":               aed(200), // per meter
			"systemCommissioning":    aed(300),
			"thermostatInstallation": aed(150),
		},
	},

	// Developer packages. kitchen-bathroom-combo is priced tight and does not
	// stack with bulk tiers.
	"new-building-package": {
		BasePrice:    aed(8000),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(8000), Max: aed(15000)},
		BulkEligible: true,
		Includes:     []string{"kitchen", "bathroom", "flooring"},
	},
	"kitchen-bathroom-combo": {
		BasePrice:    aed(4500),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(4500), Max: aed(8000)},
		BulkEligible: false,
		Includes:     []string{"kitchen", "bathroom"},
	},
	"flooring-specialist": {
		BasePrice:    aed(3000),
		PriceUnit:    PerPackage,
		PriceRange:   PriceRange{Min: aed(3000), Max: aed(6000)},
		BulkEligible: true,
		Includes:     []string{"flooring"},
	},
})

// ConstructionFinishing returns the construction finishing rate table.
func ConstructionFinishing() *Catalog {
	return constructionFinishing
}

func aed(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
