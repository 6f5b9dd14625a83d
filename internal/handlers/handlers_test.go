package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Booking{},
		&models.Photo{},
		&models.Testimonial{},
		&models.HeroStat{},
		&models.Achievement{},
		&models.Skill{},
		&models.AboutService{},
		&models.Content{},
		&models.NewsletterSubscriber{},
		&models.QuizResult{},
		&models.PriceCalculatorLog{},
		&models.Invoice{},
		&models.ClientGallery{},
		&models.GalleryPhoto{},
	)
	require.NoError(t, err)
	return db
}

// testPublisher has no Redis client, so events go to the local hub only.
func testPublisher() *realtime.Publisher {
	return &realtime.Publisher{Hub: realtime.NewHub()}
}

func jsonReq(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func parseEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func doReq(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp, parseEnvelope(t, resp)
}
