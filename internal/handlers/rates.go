package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servdubai/quote-service/internal/catalog"
)

// RateTableResponse represents a full rate table dump
type RateTableResponse struct {
	Catalog  string   `json:"catalog"`
	Keys     []string `json:"keys"`
	Currency string   `json:"currency"`
}

// RateEntryResponse represents a single rate entry
type RateEntryResponse struct {
	Catalog  string            `json:"catalog"`
	Key      string            `json:"key"`
	Entry    catalog.RateEntry `json:"entry"`
	Currency string            `json:"currency"`
}

// ListRates returns the selection keys of a catalog.
// GET /v1/rates/:catalog
func ListRates(c *gin.Context) {
	name := c.Param("catalog")
	cat, ok := catalog.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown catalog: " + name})
		return
	}

	c.JSON(http.StatusOK, RateTableResponse{
		Catalog:  cat.Name(),
		Keys:     cat.Keys(),
		Currency: "AED",
	})
}

// GetRate returns one rate entry.
// GET /v1/rates/:catalog/:key
func GetRate(c *gin.Context) {
	name := c.Param("catalog")
	key := c.Param("key")

	cat, ok := catalog.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown catalog: " + name})
		return
	}

	entry, err := cat.Lookup(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, RateEntryResponse{
		Catalog:  cat.Name(),
		Key:      key,
		Entry:    entry,
		Currency: "AED",
	})
}
