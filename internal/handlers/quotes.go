package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/installments"
	"github.com/servdubai/quote-service/internal/pricing"
)

// QuoteContext carries the flags that drive discounts and surcharges.
type QuoteContext struct {
	IsUrgent     bool `json:"isUrgent"`
	IsWeekend    bool `json:"isWeekend"`
	IsAfterHours bool `json:"isAfterHours"`
	HasContract  bool `json:"hasContract"`
	IsReferral   bool `json:"isReferral"`
}

// CalculateQuoteRequest represents the direct quote calculation request
type CalculateQuoteRequest struct {
	Catalog      string          `json:"catalog"`
	Selection    string          `json:"selection" binding:"required"`
	AreaSqm      float64         `json:"areaSqm" binding:"omitempty,min=0"`
	Units        int             `json:"units" binding:"omitempty,min=0"`
	Requirements map[string]bool `json:"requirements"`
	Context      QuoteContext    `json:"context"`
}

// CalculateQuoteResponse represents the direct quote calculation response
type CalculateQuoteResponse struct {
	Catalog            string              `json:"catalog"`
	Selection          string              `json:"selection"`
	Calculation        pricing.Calculation `json:"calculation"`
	InstallmentOptions []installments.Plan `json:"installmentOptions"`
	Currency           string              `json:"currency"`
}

// CalculateQuote runs a single pricing calculation without assembling a
// customer-facing quote.
// POST /v1/quotes
func CalculateQuote(c *gin.Context) {
	var req CalculateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Catalog == "" {
		req.Catalog = catalog.ConstructionFinishingName
	}

	calc, ok := calculatorFor(req.Catalog)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown catalog: " + req.Catalog})
		return
	}

	result, err := calc.Quote(pricing.QuoteRequest{
		Selection:    req.Selection,
		AreaSqm:      req.AreaSqm,
		Units:        req.Units,
		Requirements: req.Requirements,
		Context: pricing.AdjustmentContext{
			IsUrgent:     req.Context.IsUrgent,
			IsWeekend:    req.Context.IsWeekend,
			IsAfterHours: req.Context.IsAfterHours,
			HasContract:  req.Context.HasContract,
			IsReferral:   req.Context.IsReferral,
		},
	})
	if err != nil {
		var unknown catalog.ErrUnknownSelection
		if errors.As(err, &unknown) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate quote"})
		return
	}

	c.JSON(http.StatusOK, CalculateQuoteResponse{
		Catalog:            req.Catalog,
		Selection:          req.Selection,
		Calculation:        result,
		InstallmentOptions: installments.Options(result.TotalPrice, installmentPolicy[req.Catalog]),
		Currency:           "AED",
	})
}
