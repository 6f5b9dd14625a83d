package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
)

type TestimonialHandler struct {
	DB  *gorm.DB
	Pub *realtime.Publisher
}

func NewTestimonialHandler(db *gorm.DB, pub *realtime.Publisher) *TestimonialHandler {
	return &TestimonialHandler{DB: db, Pub: pub}
}

type TestimonialReq struct {
	ClientName   string `json:"client_name"`
	ClientRole   string `json:"client_role"`
	ClientPhoto  string `json:"client_photo"`
	Rating       int    `json:"rating"`
	ReviewText   string `json:"review_text"`
	ServiceType  string `json:"service_type"`
	Featured     bool   `json:"featured"`
	DisplayOrder int    `json:"display_order"`
}

func (h *TestimonialHandler) ListPublic(c *fiber.Ctx) error {
	featuredOnly := c.QueryBool("featured", false)

	q := h.DB.Order("display_order ASC, created_at DESC")
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}

	var items []models.Testimonial
	if err := q.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch testimonials",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *TestimonialHandler) validate(req *TestimonialReq) FieldErrors {
	errors := FieldErrors{}
	if strings.TrimSpace(req.ClientName) == "" {
		errors.Add("client_name", "Client name is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		errors.Add("rating", "Rating must be between 1 and 5")
	}
	return errors
}

func (h *TestimonialHandler) Create(c *fiber.Ctx) error {
	var req TestimonialReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if errors := h.validate(&req); len(errors) > 0 {
		return validationFail(c, errors)
	}

	t := models.Testimonial{
		ClientName:   req.ClientName,
		ClientRole:   req.ClientRole,
		ClientPhoto:  req.ClientPhoto,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
		ServiceType:  req.ServiceType,
		Featured:     req.Featured,
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.DB.Create(&t).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save testimonial",
		})
	}

	h.Pub.Changed("testimonials", "insert")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Testimonial saved",
		"data":    t,
	})
}

func (h *TestimonialHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid testimonial ID",
		})
	}

	var t models.Testimonial
	if err := h.DB.First(&t, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Testimonial not found",
		})
	}

	var req TestimonialReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if errors := h.validate(&req); len(errors) > 0 {
		return validationFail(c, errors)
	}

	t.ClientName = req.ClientName
	t.ClientRole = req.ClientRole
	t.ClientPhoto = req.ClientPhoto
	t.Rating = req.Rating
	t.ReviewText = req.ReviewText
	t.ServiceType = req.ServiceType
	t.Featured = req.Featured
	t.DisplayOrder = req.DisplayOrder

	if err := h.DB.Save(&t).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update testimonial",
		})
	}

	h.Pub.Changed("testimonials", "update")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Testimonial updated",
		"data":    t,
	})
}
