package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servdubai/quote-service/internal/quote"
)

func TestSanitizeNumber(t *testing.T) {
	assert.Equal(t, "971552418446", SanitizeNumber("+971 55 241 8446"))
	assert.Equal(t, "971552418446", SanitizeNumber("971-552-418-446"))
	assert.Equal(t, "971552418446", SanitizeNumber("971552418446"))
}

func TestLink(t *testing.T) {
	link := Link("+971 55 241 8446", "Hi ServDubai! I need a quote")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/971552418446?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hi ServDubai! I need a quote", parsed.Query().Get("text"))
}

func TestAssessmentLinks(t *testing.T) {
	numbers := DefaultNumbers()
	q := quote.Quote{
		ID: "QT-1rK5iqAbCdEfGhIj",
		EstimatedRange: quote.EstimatedRange{
			Min:      decimal.NewFromInt(2000),
			Max:      decimal.NewFromInt(3000),
			Currency: "AED",
		},
	}
	a := quote.Assessment{
		ProjectType: "kitchen",
		Timeline:    "urgent",
		ContactInfo: quote.ContactInfo{Name: "Fatima", Phone: "+971501234567"},
	}
	specialist := quote.AssignSpecialist("kitchen")

	customer := CustomerAssessmentLink(numbers, q, a, specialist)
	parsed, err := url.Parse(customer)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, q.ID)
	assert.Contains(t, text, "Fatima")
	assert.Contains(t, text, specialist.Name)
	assert.Equal(t, "/"+numbers.Business, parsed.Path)

	team := TeamAssessmentLink(numbers, q, a, specialist)
	parsed, err = url.Parse(team)
	require.NoError(t, err)
	text = parsed.Query().Get("text")
	assert.Contains(t, text, "KITCHEN")
	assert.Contains(t, text, "CRITICAL")
	assert.Contains(t, text, "AED 2,000 - AED 3,000")
	assert.Contains(t, text, "30 minutes")
	assert.Equal(t, "/"+numbers.Team, parsed.Path)
}

func TestBookingLinks(t *testing.T) {
	numbers := DefaultNumbers()
	price := decimal.NewFromInt(800)

	customer := CustomerBookingLink(numbers, "BK-1rK5iqAbCdEfGhIj", "Omar", "move-in-ready", price)
	parsed, err := url.Parse(customer)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "BK-1rK5iqAbCdEfGhIj")
	assert.Contains(t, text, "move-in-ready")
	assert.Contains(t, text, "AED 800")

	team := TeamBookingLink(numbers, "BK-1rK5iqAbCdEfGhIj", "Omar", "+971501234567", "move-in-ready", price)
	parsed, err = url.Parse(team)
	require.NoError(t, err)
	assert.Contains(t, parsed.Query().Get("text"), "+971501234567")
}
