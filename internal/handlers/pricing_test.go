package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensakita/studio_be/internal/models"
)

func pricingApp(t *testing.T) (*fiber.App, *PricingHandler) {
	t.Helper()
	db := setupTestDB(t)
	h := NewPricingHandler(db, testPublisher())

	app := fiber.New()
	app.Post("/api/pricing/estimate", h.Estimate)
	app.Get("/api/admin/pricing-logs", h.ListLogs)
	return app, h
}

func TestPricingEstimate(t *testing.T) {
	app, h := pricingApp(t)

	resp, body := doReq(t, app, jsonReq(t, "POST", "/api/pricing/estimate", fiber.Map{
		"service":       "wedding_basic",
		"addons":        []string{"drone", "printed_album"},
		"contact_email": "dewi@example.com",
	}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(8500000+1250000+2000000), data["estimated_total"])

	var entry models.PriceCalculatorLog
	require.NoError(t, h.DB.First(&entry).Error)
	assert.Equal(t, int64(11750000), entry.EstimatedTotal)
	assert.Equal(t, "dewi@example.com", entry.ContactEmail)
}

func TestPricingEstimateNoAddons(t *testing.T) {
	app, _ := pricingApp(t)

	_, body := doReq(t, app, jsonReq(t, "POST", "/api/pricing/estimate", fiber.Map{
		"service": "web_starter",
	}))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(5000000), body["data"].(map[string]any)["estimated_total"])
}

func TestPricingEstimateUnknownService(t *testing.T) {
	app, h := pricingApp(t)

	resp, body := doReq(t, app, jsonReq(t, "POST", "/api/pricing/estimate", fiber.Map{
		"service": "skydiving_shoot",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	var count int64
	require.NoError(t, h.DB.Model(&models.PriceCalculatorLog{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPricingEstimateUnknownAddon(t *testing.T) {
	app, h := pricingApp(t)

	resp, body := doReq(t, app, jsonReq(t, "POST", "/api/pricing/estimate", fiber.Map{
		"service": "wedding_basic",
		"addons":  []string{"fireworks"},
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	var count int64
	require.NoError(t, h.DB.Model(&models.PriceCalculatorLog{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
