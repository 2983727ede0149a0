// Package notify builds the WhatsApp deep links handed back to customers and
// pushed to the operations team after a submission. Link building only; email
// delivery and template rendering live outside this service.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/servdubai/quote-service/internal/pkg/money"
	"github.com/servdubai/quote-service/internal/quote"
)

// Numbers holds the WhatsApp Business numbers links are addressed to,
// in international format without plus or spaces, e.g. "971552418446".
type Numbers struct {
	Business string `mapstructure:"business" json:"business"`
	Team     string `mapstructure:"team" json:"team"`
}

// DefaultNumbers are the ServDubai WhatsApp Business lines.
func DefaultNumbers() Numbers {
	return Numbers{
		Business: "971552418446",
		Team:     "971552418447",
	}
}

// Link builds a wa.me deep link for a prefilled message.
func Link(number, message string) string {
	return "https://wa.me/" + SanitizeNumber(number) + "?text=" + url.QueryEscape(message)
}

// SanitizeNumber strips everything but digits, so numbers pasted with a plus
// sign or spaces still produce valid links.
func SanitizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CustomerAssessmentLink is the link the customer taps to open a chat with
// the business about a submitted assessment.
func CustomerAssessmentLink(numbers Numbers, q quote.Quote, a quote.Assessment, specialist quote.Specialist) string {
	message := fmt.Sprintf(`Hi ServDubai!

I submitted a construction project assessment:

Project ID: %s
Project Type: %s
Contact: %s
Phone: %s

My assigned specialist is %s (%s).

Looking forward to the site visit and detailed quote!

Best regards,
%s`,
		q.ID, a.ProjectType, a.ContactInfo.Name, a.ContactInfo.Phone,
		specialist.Name, specialist.Phone, a.ContactInfo.Name)

	return Link(numbers.Business, message)
}

// TeamAssessmentLink notifies the construction team about a new assessment.
func TeamAssessmentLink(numbers Numbers, q quote.Quote, a quote.Assessment, specialist quote.Specialist) string {
	priority := a.Priority()
	message := fmt.Sprintf(`NEW CONSTRUCTION PROJECT ASSESSMENT

Project ID: %s
Type: %s
Client: %s
Phone: %s
Estimate: %s
Priority: %s

Assigned: %s (%s)

Action: Call client within %s
Schedule site visit within 24 hours
Provide written quote within 24 hours of visit`,
		q.ID, strings.ToUpper(a.ProjectType), a.ContactInfo.Name, a.ContactInfo.Phone,
		money.FormatRange(q.EstimatedRange.Min, q.EstimatedRange.Max),
		strings.ToUpper(string(priority)),
		specialist.Name, specialist.Phone,
		priority.ResponseTime())

	return Link(numbers.Team, message)
}

// CustomerBookingLink is the link the customer taps after a resident booking.
func CustomerBookingLink(numbers Numbers, bookingID, customerName, packageKey string, price decimal.Decimal) string {
	message := fmt.Sprintf(`Hi ServDubai!

I just submitted a booking:
Booking ID: %s
Package: %s
Price: %s

Looking forward to your call within the hour!

Best regards,
%s`,
		bookingID, packageKey, money.FormatAED(price), customerName)

	return Link(numbers.Business, message)
}

// TeamBookingLink notifies the team about a new resident booking.
func TeamBookingLink(numbers Numbers, bookingID, customerName, customerPhone, packageKey string, price decimal.Decimal) string {
	message := fmt.Sprintf(`NEW RESIDENT PRIORITY BOOKING

ID: %s
Customer: %s
Phone: %s
Package: %s
Price: %s

Action: Call within 1 hour, schedule free inspection`,
		bookingID, customerName, customerPhone, packageKey, money.FormatAED(price))

	return Link(numbers.Team, message)
}
