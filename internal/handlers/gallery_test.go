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

const testTokenKey = "0123456789abcdef"

func galleryApp(t *testing.T) (*fiber.App, *GalleryHandler) {
	t.Helper()
	db := setupTestDB(t)
	h := NewGalleryHandler(db, testPublisher(), testTokenKey)

	app := fiber.New()
	app.Post("/api/galleries", func(c *fiber.Ctx) error {
		c.Locals("userId", uuid.NewString())
		return h.Create(c)
	})
	app.Get("/api/galleries/shared/:token", h.GetShared)
	return app, h
}

func TestGalleryShareTokenRoundTrip(t *testing.T) {
	app, h := galleryApp(t)

	resp, body := doReq(t, app, jsonReq(t, "POST", "/api/galleries", fiber.Map{
		"title":       "Wedding of Dewi & Budi",
		"client_name": "Dewi",
	}))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	token := data["share_token"].(string)
	require.NotEmpty(t, token)

	require.NoError(t, h.DB.Create(&models.GalleryPhoto{
		GalleryID: uuid.MustParse(data["id"].(string)),
		ImageURL:  "/uploads/galleries/1.jpg",
	}).Error)

	resp, shared := doReq(t, app, jsonReq(t, "GET", "/api/galleries/shared/"+token, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, shared["success"])

	sd := shared["data"].(map[string]any)
	assert.Equal(t, "Wedding of Dewi & Budi", sd["title"])
	assert.Len(t, sd["photos"].([]any), 1)
}

func TestGalleryBadShareTokenIs404(t *testing.T) {
	app, _ := galleryApp(t)

	resp, body := doReq(t, app, jsonReq(t, "GET", "/api/galleries/shared/garbage-token", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Gallery not found", body["message"])
}
