package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servdubai/quote-service/internal/catalog"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string   `json:"status"`
	Catalogs []string `json:"catalogs"`
}

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Catalogs: catalog.Names(),
	})
}
