package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
)

type NewsletterHandler struct {
	DB  *gorm.DB
	Pub *realtime.Publisher
}

func NewNewsletterHandler(db *gorm.DB, pub *realtime.Publisher) *NewsletterHandler {
	return &NewsletterHandler{DB: db, Pub: pub}
}

type SubscribeReq struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var req SubscribeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	errors := FieldErrors{}
	if email == "" {
		errors.Add("email", "Email is required")
	} else if !validEmail(email) {
		errors.Add("email", "Invalid email format")
	}
	if len(errors) > 0 {
		return validationFail(c, errors)
	}

	sub := models.NewsletterSubscriber{
		Email:  email,
		Name:   strings.TrimSpace(req.Name),
		Source: req.Source,
		Active: true,
	}

	if err := h.DB.Create(&sub).Error; err != nil {
		// The unique index on email turns a repeat signup into a friendly
		// message instead of the generic failure.
		if isDuplicateErr(err) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success": false,
				"message": "This email is already registered",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to subscribe",
		})
	}

	h.Pub.Changed("newsletter_subscribers", "insert")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Subscribed",
	})
}

func (h *NewsletterHandler) List(c *fiber.Ctx) error {
	var subs []models.NewsletterSubscriber
	if err := h.DB.Order("created_at DESC").Find(&subs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch subscribers",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": subs})
}
