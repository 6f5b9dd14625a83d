package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensakita/studio_be/internal/models"
)

func testimonialApp(t *testing.T) (*fiber.App, *TestimonialHandler) {
	t.Helper()
	db := setupTestDB(t)
	h := NewTestimonialHandler(db, testPublisher())

	app := fiber.New()
	app.Get("/api/testimonials", h.ListPublic)
	app.Post("/api/admin/testimonials", h.Create)
	app.Put("/api/admin/testimonials/:id", h.Update)
	return app, h
}

func TestTestimonialRatingBounds(t *testing.T) {
	app, h := testimonialApp(t)

	for _, rating := range []int{0, 6} {
		_, body := doReq(t, app, jsonReq(t, "POST", "/api/admin/testimonials", fiber.Map{
			"client_name": "Dewi",
			"rating":      rating,
		}))
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["errors"].(map[string]any), "rating")
	}

	var count int64
	require.NoError(t, h.DB.Model(&models.Testimonial{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	for _, rating := range []int{1, 5} {
		_, body := doReq(t, app, jsonReq(t, "POST", "/api/admin/testimonials", fiber.Map{
			"client_name": "Dewi",
			"rating":      rating,
		}))
		assert.Equal(t, true, body["success"])
	}
}

func TestTestimonialRequiresClientName(t *testing.T) {
	app, _ := testimonialApp(t)

	_, body := doReq(t, app, jsonReq(t, "POST", "/api/admin/testimonials", fiber.Map{
		"rating": 5,
	}))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["errors"].(map[string]any), "client_name")
}

func TestTestimonialUpdateRejectsBadRating(t *testing.T) {
	app, h := testimonialApp(t)

	tm := models.Testimonial{ClientName: "Dewi", Rating: 5}
	require.NoError(t, h.DB.Create(&tm).Error)

	_, body := doReq(t, app, jsonReq(t, "PUT", "/api/admin/testimonials/"+tm.ID.String(), fiber.Map{
		"client_name": "Dewi",
		"rating":      0,
	}))
	assert.Equal(t, false, body["success"])

	var got models.Testimonial
	require.NoError(t, h.DB.First(&got, "id = ?", tm.ID).Error)
	assert.Equal(t, 5, got.Rating)
}

func TestTestimonialListFeaturedFilter(t *testing.T) {
	app, h := testimonialApp(t)

	require.NoError(t, h.DB.Create(&models.Testimonial{ClientName: "A", Rating: 5, Featured: true}).Error)
	require.NoError(t, h.DB.Create(&models.Testimonial{ClientName: "B", Rating: 4}).Error)

	_, body := doReq(t, app, jsonReq(t, "GET", "/api/testimonials?featured=true", nil))
	assert.Len(t, body["data"].([]any), 1)

	_, body = doReq(t, app, jsonReq(t, "GET", "/api/testimonials", nil))
	assert.Len(t, body["data"].([]any), 2)
}
