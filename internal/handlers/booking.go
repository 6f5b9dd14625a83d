package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
	"github.com/lensakita/studio_be/internal/utils"
)

type BookingHandler struct {
	DB          *gorm.DB
	Pub         *realtime.Publisher
	StudioPhone string // WhatsApp number leads are pointed at
}

func NewBookingHandler(db *gorm.DB, pub *realtime.Publisher, studioPhone string) *BookingHandler {
	return &BookingHandler{DB: db, Pub: pub, StudioPhone: studioPhone}
}

type BookingReq struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceType   string `json:"service_type"`
	Package       string `json:"package"`
	EventDate     string `json:"event_date"` // YYYY-MM-DD
	Location      string `json:"location"`
	BudgetRange   string `json:"budget_range"`
	Message       string `json:"message"`
}

// Create is the public lead form. Validation runs before any insert; an
// invalid email never reaches the database.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req BookingReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	name := strings.TrimSpace(req.CustomerName)
	email := strings.ToLower(strings.TrimSpace(req.CustomerEmail))

	errors := FieldErrors{}
	if name == "" {
		errors.Add("customer_name", "Name is required")
	}
	if email == "" {
		errors.Add("customer_email", "Email is required")
	} else if !validEmail(email) {
		errors.Add("customer_email", "Invalid email format")
	}
	if strings.TrimSpace(req.ServiceType) == "" {
		errors.Add("service_type", "Service is required")
	}

	var eventDate *time.Time
	if req.EventDate != "" {
		d, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			errors.Add("event_date", "Invalid date format (expected YYYY-MM-DD)")
		} else {
			eventDate = &d
		}
	}

	if len(errors) > 0 {
		return validationFail(c, errors)
	}

	b := models.Booking{
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		ServiceType:   req.ServiceType,
		Package:       req.Package,
		EventDate:     eventDate,
		Location:      req.Location,
		BudgetRange:   req.BudgetRange,
		Message:       req.Message,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentUnpaid,
	}

	if err := h.DB.Create(&b).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save booking",
		})
	}

	h.Pub.Changed("bookings", "insert")

	waMsg := fmt.Sprintf("Hi, I just sent a booking request (%s) for %s. Name: %s", b.ID, b.ServiceType, b.CustomerName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Booking received",
		"data": fiber.Map{
			"id":            b.ID,
			"status":        b.Status,
			"whatsapp_link": utils.WhatsAppLink(h.StudioPhone, waMsg),
		},
	})
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")

	q := h.DB.Order("created_at DESC")
	if status != "" {
		if !models.ValidBookingStatus(status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Unknown status filter",
			})
		}
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch bookings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bookings,
	})
}

func (h *BookingHandler) GetOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid booking ID",
		})
	}

	var b models.Booking
	if err := h.DB.First(&b, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Booking not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    b,
	})
}

type BookingUpdateReq struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
	TotalAmount   *int64  `json:"total_amount"`
	DepositAmount *int64  `json:"deposit_amount"`
	AdminNotes    *string `json:"admin_notes"`
}

func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid booking ID",
		})
	}

	var b models.Booking
	if err := h.DB.First(&b, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Booking not found",
		})
	}

	var req BookingUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if req.Status != nil {
		if !models.ValidBookingStatus(*req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Unknown booking status",
			})
		}
		b.Status = models.BookingStatus(*req.Status)
	}
	if req.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*req.PaymentStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Unknown payment status",
			})
		}
		b.PaymentStatus = models.PaymentStatus(*req.PaymentStatus)
	}
	if req.TotalAmount != nil {
		b.TotalAmount = *req.TotalAmount
	}
	if req.DepositAmount != nil {
		b.DepositAmount = *req.DepositAmount
	}
	if req.AdminNotes != nil {
		b.AdminNotes = *req.AdminNotes
	}

	if err := h.DB.Save(&b).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update booking",
		})
	}

	h.Pub.Changed("bookings", "update")

	out := fiber.Map{
		"success": true,
		"message": "Booking updated",
		"data":    b,
	}

	// Confirmation gets a ready-to-send WhatsApp link for the client.
	if req.Status != nil && b.Status == models.BookingConfirmed && b.CustomerPhone != "" {
		msg := fmt.Sprintf("Hi %s, your %s booking is confirmed!", b.CustomerName, b.ServiceType)
		out["whatsapp_link"] = utils.WhatsAppLink(b.CustomerPhone, msg)
	}

	return c.JSON(out)
}

func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid booking ID",
		})
	}

	var b models.Booking
	if err := h.DB.First(&b, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Booking not found",
		})
	}

	if err := h.DB.Delete(&b).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete booking",
		})
	}

	h.Pub.Changed("bookings", "delete")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking deleted",
	})
}
