package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstructionCatalogEntries spot-checks the published construction rates.
func TestConstructionCatalogEntries(t *testing.T) {
	cat := ConstructionFinishing()
	assert.Equal(t, ConstructionFinishingName, cat.Name())

	kitchen, err := cat.Lookup("kitchen")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2500).Equal(kitchen.BasePrice))
	assert.Equal(t, PerProject, kitchen.PriceUnit)
	assert.True(t, kitchen.BulkEligible)
	assert.True(t, decimal.NewFromInt(800).Equal(kitchen.Components["cabinetInstallation"]))

	flooring, err := cat.Lookup("flooring")
	require.NoError(t, err)
	assert.Equal(t, PerSqm, flooring.PriceUnit)
	assert.True(t, flooring.AreaScaled())

	ac, err := cat.Lookup("ac")
	require.NoError(t, err)
	assert.Equal(t, PerUnit, ac.PriceUnit)
	assert.False(t, ac.AreaScaled())
}

// TestPackageEntries verifies the bundled packages and their bulk eligibility.
func TestPackageEntries(t *testing.T) {
	cat := ConstructionFinishing()

	combo, err := cat.Lookup("kitchen-bathroom-combo")
	require.NoError(t, err)
	assert.Equal(t, PerPackage, combo.PriceUnit)
	assert.False(t, combo.BulkEligible)

	newBuilding, err := cat.Lookup("new-building-package")
	require.NoError(t, err)
	assert.True(t, newBuilding.BulkEligible)
	assert.NotEmpty(t, newBuilding.Includes)
}

// TestLookupIsCaseSensitive verifies exact-match semantics with the typed
// error carrying the catalog namespace and key.
func TestLookupIsCaseSensitive(t *testing.T) {
	cat := ConstructionFinishing()

	_, err := cat.Lookup("Kitchen")
	require.Error(t, err)

	var unknown ErrUnknownSelection
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, ConstructionFinishingName, unknown.Catalog)
	assert.Equal(t, "Kitchen", unknown.Key)
}

// TestResidentCatalog verifies the resident namespace is independent of the
// construction one and carries the default package.
func TestResidentCatalog(t *testing.T) {
	cat := ResidentServices()
	assert.Equal(t, ResidentServicesName, cat.Name())

	assert.True(t, cat.Has(DefaultResidentPackage))
	assert.False(t, cat.Has("kitchen"))

	moveIn, err := cat.Lookup(DefaultResidentPackage)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(800).Equal(moveIn.BasePrice))
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		cat, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, cat.Name())
		assert.NotEmpty(t, cat.Keys())
	}

	_, ok := ByName("landscaping")
	assert.False(t, ok)
}

// TestKeysSorted verifies Keys returns a stable sorted listing.
func TestKeysSorted(t *testing.T) {
	keys := ConstructionFinishing().Keys()
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}
