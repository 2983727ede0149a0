package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servdubai/quote-service/internal/installments"
	"github.com/servdubai/quote-service/internal/notify"
	"github.com/servdubai/quote-service/internal/pricing"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	Init(pricing.DefaultConfig(), installments.ConstructionDefaults(), installments.ResidentDefaults(), notify.DefaultNumbers())

	router := gin.New()
	router.GET("/health", HealthCheck)
	router.POST("/v1/assessments", SubmitAssessment)
	router.POST("/v1/quotes", CalculateQuote)
	router.POST("/v1/bookings", SubmitBooking)
	router.GET("/v1/installments", GetInstallmentOptions)
	router.GET("/v1/rates/:catalog", ListRates)
	router.GET("/v1/rates/:catalog/:key", GetRate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t)

	w := getPath(t, router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, resp.Catalogs, "construction-finishing")
	assert.Contains(t, resp.Catalogs, "resident-services")
}

func TestCalculateQuoteEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/v1/quotes", CalculateQuoteRequest{
		Selection: "kitchen",
		Units:     10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp CalculateQuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "construction-finishing", resp.Catalog)
	assert.Equal(t, "25000", resp.Calculation.BasePrice.String())
	assert.Equal(t, "21250", resp.Calculation.TotalPrice.String())
	// 21250 > 10000: advance plus milestone plan
	assert.Len(t, resp.InstallmentOptions, 2)
	assert.Equal(t, "AED", resp.Currency)
}

func TestCalculateQuoteValidation(t *testing.T) {
	router := setupRouter(t)

	// Missing required selection
	w := postJSON(t, router, "/v1/quotes", map[string]interface{}{"units": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown selection
	w = postJSON(t, router, "/v1/quotes", CalculateQuoteRequest{Selection: "helipad"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown catalog
	w = postJSON(t, router, "/v1/quotes", CalculateQuoteRequest{Catalog: "landscaping", Selection: "kitchen"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitAssessmentEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/v1/assessments", AssessmentRequest{
		ProjectType: "kitchen",
		Units:       1,
		Timeline:    "urgent - moving in next week",
		KitchenRequirements: map[string]bool{
			"cabinetInstallation": true,
		},
		ContactInfo: ContactInfoRequest{
			Name:  "Fatima Al-Suwaidi",
			Phone: "+971501234567",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AssessmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	// 2500 + 800 cabinets + 200 urgent
	assert.Equal(t, "3500", resp.Quote.Breakdown.TotalPrice.String())
	assert.Equal(t, "critical", string(resp.Priority))
	assert.Equal(t, "30 minutes", resp.ResponseTime)
	assert.Equal(t, "Ahmed Al-Mansouri", resp.Specialist.Name)
	assert.Contains(t, resp.WhatsAppCustomer, "https://wa.me/")
	assert.Contains(t, resp.WhatsAppTeam, "https://wa.me/")
}

func TestSubmitAssessmentValidation(t *testing.T) {
	router := setupRouter(t)

	// Missing contact info
	w := postJSON(t, router, "/v1/assessments", map[string]interface{}{"projectType": "kitchen"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown project type
	w = postJSON(t, router, "/v1/assessments", AssessmentRequest{
		ProjectType: "landscaping",
		ContactInfo: ContactInfoRequest{Name: "Omar", Phone: "+971501234567"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitBookingEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/v1/bookings", BookingRequest{
		PackageKey:   "amc-premium",
		CustomerName: "Omar",
		Phone:        "+971501234567",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, `^BK-`, resp.BookingID)
	assert.Equal(t, "2500", resp.TotalPrice.String())
	// 2500 >= resident threshold 1000: one advance plan, never milestones
	assert.Len(t, resp.InstallmentOptions, 1)
}

func TestSubmitBookingFallsBackToDefaultPackage(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/v1/bookings", BookingRequest{
		PackageKey:   "discontinued-promo",
		CustomerName: "Omar",
		Phone:        "+971501234567",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "move-in-ready", resp.PackageKey)
	assert.Equal(t, "800", resp.BasePrice.String())
}

func TestSubmitBookingPricingModifiers(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/v1/bookings", BookingRequest{
		PackageKey:          "move-in-ready",
		CustomerName:        "Layla",
		Phone:               "+971501234567",
		IsFirstTimeResident: true,
		IsEmergency:         true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 800 - 240 first-time discount + 100 emergency
	assert.Equal(t, "240", resp.Discount.String())
	assert.Equal(t, "100", resp.Surcharge.String())
	assert.Equal(t, "660", resp.TotalPrice.String())
}

func TestGetInstallmentOptionsEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := getPath(t, router, "/v1/installments?total=8000")
	require.Equal(t, http.StatusOK, w.Code)

	var resp InstallmentOptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 1)
	assert.Equal(t, "3200", resp.Plans[0].AdvanceAmount.String())
	assert.Equal(t, "4800", resp.Plans[0].RemainingAmount.String())

	// Below threshold: empty but valid
	w = getPath(t, router, "/v1/installments?total=4000")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Plans)

	// Resident policy via catalog parameter
	w = getPath(t, router, "/v1/installments?total=2000&catalog=resident-services")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 1)
	assert.Equal(t, "600", resp.Plans[0].AdvanceAmount.String())
}

func TestGetInstallmentOptionsValidation(t *testing.T) {
	router := setupRouter(t)

	assert.Equal(t, http.StatusBadRequest, getPath(t, router, "/v1/installments").Code)
	assert.Equal(t, http.StatusBadRequest, getPath(t, router, "/v1/installments?total=abc").Code)
	assert.Equal(t, http.StatusBadRequest, getPath(t, router, "/v1/installments?total=-5").Code)
	assert.Equal(t, http.StatusNotFound, getPath(t, router, "/v1/installments?total=8000&catalog=landscaping").Code)
}

func TestRatesEndpoints(t *testing.T) {
	router := setupRouter(t)

	w := getPath(t, router, "/v1/rates/construction-finishing")
	require.Equal(t, http.StatusOK, w.Code)

	var listing RateTableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Contains(t, listing.Keys, "kitchen")
	assert.Contains(t, listing.Keys, "new-building-package")

	w = getPath(t, router, "/v1/rates/construction-finishing/kitchen")
	require.Equal(t, http.StatusOK, w.Code)

	var entry RateEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "kitchen", entry.Key)
	assert.Equal(t, "2500", entry.Entry.BasePrice.String())

	assert.Equal(t, http.StatusNotFound, getPath(t, router, "/v1/rates/landscaping").Code)
	assert.Equal(t, http.StatusNotFound, getPath(t, router, "/v1/rates/construction-finishing/helipad").Code)
}
