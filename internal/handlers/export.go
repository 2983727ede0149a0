package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/servdubai/quote-service/internal/catalog"
	"github.com/servdubai/quote-service/internal/export"
)

// ExportRateCard streams the full rate card workbook.
// GET /internal/rates/export
func ExportRateCard(c *gin.Context) {
	filename := "servdubai-rates-" + time.Now().Format("2006-01-02") + ".xlsx"

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.WriteRateCard(c.Writer, catalog.Names()); err != nil {
		log.Error().Err(err).Msg("Failed to export rate card")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to export rate card"})
		return
	}
}
