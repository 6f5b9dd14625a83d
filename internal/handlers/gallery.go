package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
	"github.com/lensakita/studio_be/internal/utils"
)

type GalleryHandler struct {
	DB       *gorm.DB
	Pub      *realtime.Publisher
	TokenKey string
}

func NewGalleryHandler(db *gorm.DB, pub *realtime.Publisher, tokenKey string) *GalleryHandler {
	return &GalleryHandler{DB: db, Pub: pub, TokenKey: tokenKey}
}

type GalleryReq struct {
	Title       string `json:"title"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}

func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	uid, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	var req GalleryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if strings.TrimSpace(req.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Title is required",
		})
	}

	g := models.ClientGallery{
		UserID:      uid,
		Title:       req.Title,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	}

	if err := h.DB.Create(&g).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create gallery",
		})
	}

	token, err := utils.EncryptShareToken(g.ID, h.TokenKey)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create share token",
		})
	}

	h.Pub.Changed("client_galleries", "insert")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Gallery created",
		"data": fiber.Map{
			"id":          g.ID,
			"title":       g.Title,
			"share_token": token,
		},
	})
}

func (h *GalleryHandler) List(c *fiber.Ctx) error {
	var galleries []models.ClientGallery
	if err := h.DB.Preload("Photos").Order("created_at DESC").Find(&galleries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch galleries",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": galleries})
}

type GalleryPhotoReq struct {
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

func (h *GalleryHandler) AddPhoto(c *fiber.Ctx) error {
	galleryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gallery ID",
		})
	}

	var g models.ClientGallery
	if err := h.DB.First(&g, "id = ?", galleryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Gallery not found",
		})
	}

	var req GalleryPhotoReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Image URL is required",
		})
	}

	p := models.GalleryPhoto{
		GalleryID: g.ID,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	}

	if err := h.DB.Create(&p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to add photo",
		})
	}

	h.Pub.Changed("gallery_photos", "insert")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    p,
	})
}

func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gallery ID",
		})
	}

	var g models.ClientGallery
	if err := h.DB.First(&g, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Gallery not found",
		})
	}

	if err := h.DB.Where("gallery_id = ?", g.ID).Delete(&models.GalleryPhoto{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete gallery photos",
		})
	}
	if err := h.DB.Delete(&g).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete gallery",
		})
	}

	h.Pub.Changed("client_galleries", "delete")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Gallery deleted",
	})
}

// GetShared resolves a share token without authentication. A bad token is a
// plain 404, nothing about why.
func (h *GalleryHandler) GetShared(c *fiber.Ctx) error {
	token := c.Params("token")

	id, err := utils.DecryptShareToken(token, h.TokenKey)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Gallery not found",
		})
	}

	var g models.ClientGallery
	if err := h.DB.Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&g, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Gallery not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"title":       g.Title,
			"client_name": g.ClientName,
			"photos":      g.Photos,
		},
	})
}
