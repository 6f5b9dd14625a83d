package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensakita/studio_be/internal/models"
)

func invoiceApp(t *testing.T) (*fiber.App, *InvoiceHandler) {
	t.Helper()
	db := setupTestDB(t)
	h := NewInvoiceHandler(db, testPublisher())

	app := fiber.New()
	app.Post("/api/admin/invoices", h.Create)
	app.Get("/api/admin/invoices", h.List)
	app.Patch("/api/admin/invoices/:id", h.Update)
	app.Delete("/api/admin/invoices/:id", h.Delete)
	return app, h
}

func seedBooking(t *testing.T, h *InvoiceHandler) models.Booking {
	t.Helper()
	b := models.Booking{
		CustomerName:  "Dewi",
		CustomerEmail: "dewi@example.com",
		ServiceType:   "wedding",
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentUnpaid,
	}
	require.NoError(t, h.DB.Create(&b).Error)
	return b
}

func TestInvoiceCreate(t *testing.T) {
	app, h := invoiceApp(t)
	b := seedBooking(t, h)

	resp, body := doReq(t, app, jsonReq(t, "POST", "/api/admin/invoices", fiber.Map{
		"booking_id":   b.ID.String(),
		"total_amount": 18500000,
		"due_date":     "2026-10-01",
	}))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	number := data["number"].(string)
	assert.True(t, strings.HasPrefix(number, "INV-"))
	assert.Len(t, number, 12)
	assert.Equal(t, "unpaid", data["status"])
}

func TestInvoiceCreateUnknownBookingIs404(t *testing.T) {
	app, h := invoiceApp(t)

	resp, _ := doReq(t, app, jsonReq(t, "POST", "/api/admin/invoices", fiber.Map{
		"booking_id": uuid.NewString(),
	}))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	require.NoError(t, h.DB.Model(&models.Invoice{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestInvoiceCreateRetriesOnNumberCollision(t *testing.T) {
	app, h := invoiceApp(t)
	b := seedBooking(t, h)

	taken := models.GenerateInvoiceNumber()
	require.NoError(t, h.DB.Create(&models.Invoice{
		BookingID: b.ID,
		Number:    taken,
		Status:    models.InvoiceUnpaid,
	}).Error)

	// First generated number collides with the existing row; the handler
	// must regenerate instead of answering 500.
	calls := 0
	h.newNumber = func() string {
		calls++
		if calls == 1 {
			return taken
		}
		return models.GenerateInvoiceNumber()
	}

	resp, body := doReq(t, app, jsonReq(t, "POST", "/api/admin/invoices", fiber.Map{
		"booking_id": b.ID.String(),
	}))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 2, calls)
	assert.NotEqual(t, taken, body["data"].(map[string]any)["number"])
}

func TestInvoiceUpdateStatus(t *testing.T) {
	app, h := invoiceApp(t)
	b := seedBooking(t, h)

	inv := models.Invoice{BookingID: b.ID, Number: models.GenerateInvoiceNumber(), Status: models.InvoiceUnpaid}
	require.NoError(t, h.DB.Create(&inv).Error)

	resp, _ := doReq(t, app, jsonReq(t, "PATCH", "/api/admin/invoices/"+inv.ID.String(), fiber.Map{
		"status": "overdue",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body := doReq(t, app, jsonReq(t, "PATCH", "/api/admin/invoices/"+inv.ID.String(), fiber.Map{
		"status": "paid",
	}))
	assert.Equal(t, true, body["success"])

	var got models.Invoice
	require.NoError(t, h.DB.First(&got, "id = ?", inv.ID).Error)
	assert.Equal(t, models.InvoicePaid, got.Status)
}

func TestInvoiceListByBooking(t *testing.T) {
	app, h := invoiceApp(t)
	b1 := seedBooking(t, h)
	b2 := seedBooking(t, h)

	require.NoError(t, h.DB.Create(&models.Invoice{BookingID: b1.ID, Number: models.GenerateInvoiceNumber(), Status: models.InvoiceUnpaid}).Error)
	require.NoError(t, h.DB.Create(&models.Invoice{BookingID: b2.ID, Number: models.GenerateInvoiceNumber(), Status: models.InvoiceUnpaid}).Error)

	_, body := doReq(t, app, jsonReq(t, "GET", "/api/admin/invoices?booking_id="+b1.ID.String(), nil))
	assert.Len(t, body["data"].([]any), 1)
}

func TestInvoiceDeleteMissingIs404(t *testing.T) {
	app, _ := invoiceApp(t)

	resp, _ := doReq(t, app, jsonReq(t, "DELETE", "/api/admin/invoices/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
