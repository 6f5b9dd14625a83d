package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
)

type InvoiceHandler struct {
	DB  *gorm.DB
	Pub *realtime.Publisher

	newNumber func() string
}

func NewInvoiceHandler(db *gorm.DB, pub *realtime.Publisher) *InvoiceHandler {
	return &InvoiceHandler{DB: db, Pub: pub, newNumber: models.GenerateInvoiceNumber}
}

type InvoiceReq struct {
	BookingID     string `json:"booking_id"`
	TotalAmount   int64  `json:"total_amount"`
	DepositAmount int64  `json:"deposit_amount"`
	DueDate       string `json:"due_date"` // YYYY-MM-DD
	Notes         string `json:"notes"`
}

func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var req InvoiceReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid booking ID",
		})
	}

	var booking models.Booking
	if err := h.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Booking not found",
		})
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid due date (expected YYYY-MM-DD)",
			})
		}
		dueDate = &d
	}

	inv := models.Invoice{
		BookingID:     booking.ID,
		TotalAmount:   req.TotalAmount,
		DepositAmount: req.DepositAmount,
		Status:        models.InvoiceUnpaid,
		DueDate:       dueDate,
		Notes:         req.Notes,
	}

	// The random number can collide with the unique index; regenerate and
	// retry instead of surfacing a 500.
	var createErr error
	for attempt := 0; attempt < 3; attempt++ {
		inv.Number = h.newNumber()
		createErr = h.DB.Create(&inv).Error
		if createErr == nil || !isDuplicateErr(createErr) {
			break
		}
	}
	if createErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save invoice",
		})
	}

	h.Pub.Changed("invoices", "insert")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Invoice created",
		"data":    inv,
	})
}

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	q := h.DB.Preload("Booking").Order("created_at DESC")
	if bid := c.Query("booking_id"); bid != "" {
		id, err := uuid.Parse(bid)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid booking ID",
			})
		}
		q = q.Where("booking_id = ?", id)
	}

	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch invoices",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": invoices})
}

type InvoiceUpdateReq struct {
	Status        *string `json:"status"`
	TotalAmount   *int64  `json:"total_amount"`
	DepositAmount *int64  `json:"deposit_amount"`
	DueDate       *string `json:"due_date"`
	Notes         *string `json:"notes"`
}

func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid invoice ID",
		})
	}

	var inv models.Invoice
	if err := h.DB.First(&inv, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Invoice not found",
		})
	}

	var req InvoiceUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if req.Status != nil {
		if !models.ValidInvoiceStatus(*req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Unknown invoice status",
			})
		}
		inv.Status = models.InvoiceStatus(*req.Status)
	}
	if req.TotalAmount != nil {
		inv.TotalAmount = *req.TotalAmount
	}
	if req.DepositAmount != nil {
		inv.DepositAmount = *req.DepositAmount
	}
	if req.DueDate != nil {
		d, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid due date (expected YYYY-MM-DD)",
			})
		}
		inv.DueDate = &d
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}

	if err := h.DB.Save(&inv).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update invoice",
		})
	}

	h.Pub.Changed("invoices", "update")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice updated",
		"data":    inv,
	})
}

func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid invoice ID",
		})
	}

	res := h.DB.Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete invoice",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Invoice not found",
		})
	}

	h.Pub.Changed("invoices", "delete")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice deleted",
	})
}
