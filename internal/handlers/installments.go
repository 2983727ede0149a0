package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/installments"
)

// InstallmentOptionsRequest represents query parameters for installment plans
type InstallmentOptionsRequest struct {
	Total   string `form:"total" binding:"required"`
	Catalog string `form:"catalog"`
}

// InstallmentOptionsResponse represents the available installment plans
type InstallmentOptionsResponse struct {
	Total    decimal.Decimal     `json:"total"`
	Catalog  string              `json:"catalog"`
	Plans    []installments.Plan `json:"plans"`
	Currency string              `json:"currency"`
}

// GetInstallmentOptions returns the payment plans available for a total.
// GET /v1/installments?total=8000&catalog=construction-finishing
func GetInstallmentOptions(c *gin.Context) {
	var req InstallmentOptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, err := decimal.NewFromString(req.Total)
	if err != nil || total.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total must be a non-negative amount"})
		return
	}

	if req.Catalog == "" {
		req.Catalog = catalog.ConstructionFinishingName
	}
	policy, ok := installmentPolicy[req.Catalog]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown catalog: " + req.Catalog})
		return
	}

	c.JSON(http.StatusOK, InstallmentOptionsResponse{
		Total:    total,
		Catalog:  req.Catalog,
		Plans:    installments.Options(total, policy),
		Currency: "AED",
	})
}
