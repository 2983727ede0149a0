package quote

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/pricing"
)

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	calc := pricing.NewCalculator(catalog.ConstructionFinishing(), pricing.DefaultConfig())
	return NewAssembler(calc)
}

// TestGenerateRangeBracketsTotal verifies the estimated range is ±20% around
// the computed total and always contains it.
func TestGenerateRangeBracketsTotal(t *testing.T) {
	assembler := newTestAssembler(t)

	q, err := assembler.Generate(Assessment{ProjectType: "kitchen", Units: 1})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(2000).Equal(q.EstimatedRange.Min), "got %s", q.EstimatedRange.Min)
	assert.True(t, decimal.NewFromInt(3000).Equal(q.EstimatedRange.Max), "got %s", q.EstimatedRange.Max)
	assert.Equal(t, "AED", q.EstimatedRange.Currency)

	assert.True(t, q.EstimatedRange.Min.LessThanOrEqual(q.Breakdown.TotalPrice))
	assert.True(t, q.EstimatedRange.Max.GreaterThanOrEqual(q.Breakdown.TotalPrice))
}

// TestGenerateIDs verifies reference IDs carry the QT prefix and are unique
// across generations.
func TestGenerateIDs(t *testing.T) {
	assembler := newTestAssembler(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		q, err := assembler.Generate(Assessment{ProjectType: "bathroom", Units: 1})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(q.ID, "QT-"), q.ID)
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
}

// TestGenerateUsesAssessmentContext verifies the assessment's signals reach
// the adjustment engine: company -> contract discount, urgent timeline ->
// surcharge.
func TestGenerateUsesAssessmentContext(t *testing.T) {
	assembler := newTestAssembler(t)

	q, err := assembler.Generate(Assessment{
		ProjectType: "kitchen",
		Units:       1,
		Timeline:    "urgent - need this done now",
		ContactInfo: ContactInfo{Name: "Fatima", Company: "Marina Heights LLC"},
	})
	require.NoError(t, err)

	assert.True(t, q.Breakdown.Discounts.Contract.IsPositive())
	assert.True(t, q.Breakdown.Surcharges.UrgentProject.IsPositive())
}

// TestGenerateFreeTextFallback verifies prose project sizes still price when
// the structured quantity fields are absent.
func TestGenerateFreeTextFallback(t *testing.T) {
	assembler := newTestAssembler(t)

	q, err := assembler.Generate(Assessment{
		ProjectType: "flooring",
		ProjectSize: "120 sqm apartment",
	})
	require.NoError(t, err)

	// 120 * 80
	assert.True(t, decimal.NewFromInt(9600).Equal(q.Breakdown.BasePrice), "got %s", q.Breakdown.BasePrice)
}

// TestGenerateUnknownProjectType verifies the catalog error propagates.
func TestGenerateUnknownProjectType(t *testing.T) {
	assembler := newTestAssembler(t)

	_, err := assembler.Generate(Assessment{ProjectType: "landscaping"})
	assert.Error(t, err)
}

// TestRecommendations verifies each advisory triggers on its condition and
// the two constant advisories always close the list.
func TestRecommendations(t *testing.T) {
	assembler := newTestAssembler(t)

	small, err := assembler.Generate(Assessment{ProjectType: "kitchen", Units: 1})
	require.NoError(t, err)
	require.Len(t, small.Recommendations, 2)
	assert.Equal(t, "Site visit recommended for accurate quote and timeline", small.Recommendations[0])

	bulk, err := assembler.Generate(Assessment{ProjectType: "kitchen", Units: 10})
	require.NoError(t, err)
	require.Len(t, bulk.Recommendations, 3)
	assert.Contains(t, bulk.Recommendations[0], "Bulk discount available")

	large, err := assembler.Generate(Assessment{
		ProjectType: "flooring",
		AreaSqm:     150,
		ContactInfo: ContactInfo{Company: "Emaar"},
	})
	require.NoError(t, err)
	assert.Contains(t, large.Recommendations, "Contract customer discount available for ongoing projects")
	assert.Contains(t, large.Recommendations, "Large area project - consider phased implementation for better scheduling")
}
