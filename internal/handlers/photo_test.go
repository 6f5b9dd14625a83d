package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensakita/studio_be/internal/models"
)

func photoApp(t *testing.T) (*fiber.App, *PhotoHandler) {
	t.Helper()
	db := setupTestDB(t)
	h := NewPhotoHandler(db, testPublisher(), t.TempDir(), "http://localhost:3000")

	app := fiber.New()
	app.Get("/api/photos", h.ListPublic)
	app.Get("/api/photos/:id", h.GetOne)
	app.Post("/api/photos/:id/engagement", h.Engagement)
	return app, h
}

func seedPhoto(t *testing.T, h *PhotoHandler) models.Photo {
	t.Helper()
	p := models.Photo{
		UserID:   uuid.New(),
		Title:    "Golden hour",
		ImageURL: "/uploads/photos/golden.jpg",
		Category: "wedding",
	}
	require.NoError(t, h.DB.Create(&p).Error)
	return p
}

func TestPhotoEngagementIncrements(t *testing.T) {
	app, h := photoApp(t)
	p := seedPhoto(t, h)

	for i := 0; i < 3; i++ {
		resp, body := doReq(t, app, jsonReq(t, "POST", "/api/photos/"+p.ID.String()+"/engagement", fiber.Map{
			"stat": "likes",
		}))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
	}
	_, _ = doReq(t, app, jsonReq(t, "POST", "/api/photos/"+p.ID.String()+"/engagement", fiber.Map{
		"stat": "downloads",
	}))

	var got models.Photo
	require.NoError(t, h.DB.First(&got, "id = ?", p.ID).Error)
	assert.Equal(t, int64(3), got.Likes)
	assert.Equal(t, int64(1), got.Downloads)
	assert.Equal(t, int64(0), got.Shares)
}

func TestPhotoEngagementUnknownStat(t *testing.T) {
	app, h := photoApp(t)
	p := seedPhoto(t, h)

	resp, body := doReq(t, app, jsonReq(t, "POST", "/api/photos/"+p.ID.String()+"/engagement", fiber.Map{
		"stat": "views",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestPhotoEngagementMissingPhoto(t *testing.T) {
	app, _ := photoApp(t)

	resp, _ := doReq(t, app, jsonReq(t, "POST", "/api/photos/"+uuid.NewString()+"/engagement", fiber.Map{
		"stat": "likes",
	}))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPhotoListPublicFilters(t *testing.T) {
	app, h := photoApp(t)

	require.NoError(t, h.DB.Create(&models.Photo{
		UserID: uuid.New(), Title: "A", ImageURL: "/a.jpg", Category: "wedding", Featured: true,
	}).Error)
	require.NoError(t, h.DB.Create(&models.Photo{
		UserID: uuid.New(), Title: "B", ImageURL: "/b.jpg", Category: "product",
	}).Error)

	_, body := doReq(t, app, jsonReq(t, "GET", "/api/photos?category=wedding", nil))
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"].([]any), 1)

	_, body = doReq(t, app, jsonReq(t, "GET", "/api/photos?featured=true", nil))
	assert.Len(t, body["data"].([]any), 1)

	_, body = doReq(t, app, jsonReq(t, "GET", "/api/photos", nil))
	assert.Len(t, body["data"].([]any), 2)
}
