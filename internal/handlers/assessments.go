package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/installments"
	"github.com/servdubai/quote-service/internal/notify"
	"github.com/servdubai/quote-service/internal/quote"
)

// fallbackContact is surfaced when quote generation fails so the lead is
// never lost.
const fallbackContact = "+971 55 241 8446"

// AssessmentRequest represents a project assessment form submission
type AssessmentRequest struct {
	ProjectType string `json:"projectType" binding:"required"`

	AreaSqm     float64 `json:"areaSqm" binding:"omitempty,min=0"`
	Units       int     `json:"units" binding:"omitempty,min=0"`
	ProjectSize string  `json:"projectSize"`

	Timeline        string `json:"timeline"`
	BestContactTime string `json:"bestContactTime"`
	MarketingSource string `json:"marketingSource"`

	KitchenRequirements  map[string]bool `json:"kitchenRequirements"`
	BathroomRequirements map[string]bool `json:"bathroomRequirements"`
	FlooringRequirements map[string]bool `json:"flooringRequirements"`
	WoodworkRequirements map[string]bool `json:"woodworkRequirements"`
	PaintingRequirements map[string]bool `json:"paintingRequirements"`
	AcRequirements       map[string]bool `json:"acRequirements"`

	ContactInfo ContactInfoRequest `json:"contactInfo" binding:"required"`
}

// ContactInfoRequest represents the customer contact block of an assessment
type ContactInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Company string `json:"company"`
}

// AssessmentResponse represents the assessment result sent back to the site
type AssessmentResponse struct {
	Success            bool                `json:"success"`
	Quote              quote.Quote         `json:"quote"`
	InstallmentOptions []installments.Plan `json:"installmentOptions"`
	Priority           quote.Priority      `json:"priority"`
	ResponseTime       string              `json:"responseTime"`
	Specialist         quote.Specialist    `json:"specialist"`
	WhatsAppCustomer   string              `json:"whatsappCustomer"`
	WhatsAppTeam       string              `json:"whatsappTeam"`
}

// SubmitAssessment turns a project assessment into an instant quote with
// installment options, a specialist assignment and WhatsApp handoff links.
// POST /v1/assessments
func SubmitAssessment(c *gin.Context) {
	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment := quote.Assessment{
		ProjectType:          req.ProjectType,
		AreaSqm:              req.AreaSqm,
		Units:                req.Units,
		ProjectSize:          req.ProjectSize,
		Timeline:             req.Timeline,
		BestContactTime:      req.BestContactTime,
		MarketingSource:      req.MarketingSource,
		KitchenRequirements:  req.KitchenRequirements,
		BathroomRequirements: req.BathroomRequirements,
		FlooringRequirements: req.FlooringRequirements,
		WoodworkRequirements: req.WoodworkRequirements,
		PaintingRequirements: req.PaintingRequirements,
		AcRequirements:       req.AcRequirements,
		ContactInfo: quote.ContactInfo{
			Name:    req.ContactInfo.Name,
			Phone:   req.ContactInfo.Phone,
			Email:   req.ContactInfo.Email,
			Company: req.ContactInfo.Company,
		},
	}

	q, err := assembler.Generate(assessment)
	if err != nil {
		var unknown catalog.ErrUnknownSelection
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Str("projectType", req.ProjectType).Msg("Failed to generate quote")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate quote",
			"message": "Please call us directly at " + fallbackContact,
		})
		return
	}

	priority := assessment.Priority()
	specialist := quote.AssignSpecialist(req.ProjectType)
	policy := installmentPolicy[catalog.ConstructionFinishingName]

	c.JSON(http.StatusOK, AssessmentResponse{
		Success:            true,
		Quote:              q,
		InstallmentOptions: installments.Options(q.Breakdown.TotalPrice, policy),
		Priority:           priority,
		ResponseTime:       priority.ResponseTime(),
		Specialist:         specialist,
		WhatsAppCustomer:   notify.CustomerAssessmentLink(whatsappNumbers, q, assessment, specialist),
		WhatsAppTeam:       notify.TeamAssessmentLink(whatsappNumbers, q, assessment, specialist),
	})
}
