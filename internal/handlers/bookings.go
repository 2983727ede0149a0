package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/installments"
	"github.com/servdubai/quote-service/internal/notify"
	"github.com/servdubai/quote-service/internal/pkg/refid"
)

// firstTimeResidentRate is the discount applied to a resident's first booking.
var firstTimeResidentRate = decimal.NewFromFloat(0.30)

// emergencySurcharge is the flat AED surcharge for same-day emergency callouts.
var emergencySurcharge = decimal.NewFromInt(100)

// BookingRequest represents a resident service booking
type BookingRequest struct {
	PackageKey          string `json:"packageKey"`
	CustomerName        string `json:"customerName" binding:"required"`
	Phone               string `json:"phone" binding:"required"`
	Email               string `json:"email" binding:"omitempty,email"`
	Building            string `json:"building"`
	Apartment           string `json:"apartment"`
	PreferredDate       string `json:"preferredDate"`
	IsFirstTimeResident bool   `json:"isFirstTimeResident"`
	IsEmergency         bool   `json:"isEmergency"`
	Notes               string `json:"notes"`
}

// BookingResponse represents the booking confirmation
type BookingResponse struct {
	Success            bool                `json:"success"`
	BookingID          string              `json:"bookingId"`
	PackageKey         string              `json:"packageKey"`
	BasePrice          decimal.Decimal     `json:"basePrice"`
	Discount           decimal.Decimal     `json:"discount"`
	Surcharge          decimal.Decimal     `json:"surcharge"`
	TotalPrice         decimal.Decimal     `json:"totalPrice"`
	Currency           string              `json:"currency"`
	InstallmentOptions []installments.Plan `json:"installmentOptions"`
	WhatsAppCustomer   string              `json:"whatsappCustomer"`
	WhatsAppTeam       string              `json:"whatsappTeam"`
}

// SubmitBooking prices and confirms a resident service booking.
// Unknown package keys fall back to the default move-in package so a stale
// site build can still take bookings.
// POST /v1/bookings
func SubmitBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	residents, _ := catalog.ByName(catalog.ResidentServicesName)

	packageKey := req.PackageKey
	if !residents.Has(packageKey) {
		if packageKey != "" {
			log.Warn().Str("packageKey", packageKey).Msg("Unknown package, falling back to default")
		}
		packageKey = catalog.DefaultResidentPackage
	}

	entry, err := residents.Lookup(packageKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to price booking",
			"message": "Please call us directly at " + fallbackContact,
		})
		return
	}

	base := entry.BasePrice
	total := base

	var discount decimal.Decimal
	if req.IsFirstTimeResident {
		discount = base.Mul(firstTimeResidentRate).Round(0)
		total = total.Sub(discount)
	}

	var surcharge decimal.Decimal
	if req.IsEmergency {
		surcharge = emergencySurcharge
		total = total.Add(surcharge)
	}

	bookingID := refid.New("BK")
	policy := installmentPolicy[catalog.ResidentServicesName]

	log.Info().
		Str("bookingId", bookingID).
		Str("packageKey", packageKey).
		Str("total", total.String()).
		Msg("Booking created")

	c.JSON(http.StatusOK, BookingResponse{
		Success:            true,
		BookingID:          bookingID,
		PackageKey:         packageKey,
		BasePrice:          base,
		Discount:           discount,
		Surcharge:          surcharge,
		TotalPrice:         total,
		Currency:           "AED",
		InstallmentOptions: installments.Options(total, policy),
		WhatsAppCustomer:   notify.CustomerBookingLink(whatsappNumbers, bookingID, req.CustomerName, packageKey, total),
		WhatsAppTeam:       notify.TeamBookingLink(whatsappNumbers, bookingID, req.CustomerName, req.Phone, packageKey, total),
	})
}
