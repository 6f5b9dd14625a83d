package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/imaging"
	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
	"github.com/lensakita/studio_be/internal/utils"
)

const defaultMaxPhotoWidth = 1600

type PhotoHandler struct {
	DB        *gorm.DB
	Pub       *realtime.Publisher
	UploadDir string
	BaseURL   string
}

func NewPhotoHandler(db *gorm.DB, pub *realtime.Publisher, uploadDir, baseURL string) *PhotoHandler {
	return &PhotoHandler{DB: db, Pub: pub, UploadDir: uploadDir, BaseURL: baseURL}
}

type PhotoReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sort_order"`
}

// ListPublic is the gallery feed. This is the one query with retry: three
// attempts, delay doubling, capped at 30s.
func (h *PhotoHandler) ListPublic(c *fiber.Ctx) error {
	category := c.Query("category")
	featuredOnly := c.QueryBool("featured", false)

	var photos []models.Photo
	err := utils.Retry(3, time.Second, 30*time.Second, func() error {
		q := h.DB.Order("sort_order ASC, created_at DESC")
		if category != "" {
			q = q.Where("category = ?", category)
		}
		if featuredOnly {
			q = q.Where("featured = ?", true)
		}
		return q.Find(&photos).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch photos",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    photos,
	})
}

func (h *PhotoHandler) GetOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid photo ID",
		})
	}

	var p models.Photo
	if err := h.DB.First(&p, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Photo not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    p,
	})
}

// Upload accepts a multipart image plus optional crop parameters. The file is
// cropped and scaled server-side, re-encoded as JPEG, and stored under a
// per-user prefix.
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	uid, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Image file missing",
		})
	}
	if file.Size <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid file size",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Unsupported image format",
		})
	}

	var crop *imaging.CropRect
	if c.FormValue("crop_w") != "" {
		x, _ := strconv.Atoi(c.FormValue("crop_x"))
		y, _ := strconv.Atoi(c.FormValue("crop_y"))
		w, errW := strconv.Atoi(c.FormValue("crop_w"))
		hh, errH := strconv.Atoi(c.FormValue("crop_h"))
		if errW != nil || errH != nil || w <= 0 || hh <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid crop parameters",
			})
		}
		crop = &imaging.CropRect{X: x, Y: y, Width: w, Height: hh}
	}

	maxWidth := defaultMaxPhotoWidth
	if mw := c.FormValue("max_width"); mw != "" {
		if v, err := strconv.Atoi(mw); err == nil && v > 0 {
			maxWidth = v
		}
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read upload",
		})
	}
	defer src.Close()

	data, outW, outH, err := imaging.Process(src, crop, maxWidth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid image: " + err.Error(),
		})
	}

	// Files live under the uploading user's prefix.
	dir := filepath.Join(h.UploadDir, "photos", uid.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create upload folder",
		})
	}

	filename := fmt.Sprintf("photo_%d.jpg", time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save image",
		})
	}

	publicPath := "/uploads/photos/" + uid.String() + "/" + filename
	fullURL := publicPath
	if h.BaseURL != "" {
		fullURL = strings.TrimRight(h.BaseURL, "/") + publicPath
	}

	return c.JSON(fiber.Map{
		"success": true,
		"url":     fullURL,
		"width":   outW,
		"height":  outH,
	})
}

func (h *PhotoHandler) Create(c *fiber.Ctx) error {
	uid, err := getUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	var req PhotoReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ImageURL) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Title and image URL are required",
		})
	}

	tagsJSON, err := json.Marshal(req.Tags)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to process tags",
		})
	}

	p := models.Photo{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Tags:        datatypes.JSON(tagsJSON),
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
	}

	if err := h.DB.Create(&p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save photo",
		})
	}

	h.Pub.Changed("photos", "insert")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Photo saved",
		"data":    p,
	})
}

func (h *PhotoHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid photo ID",
		})
	}

	var p models.Photo
	if err := h.DB.First(&p, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Photo not found",
		})
	}

	var req PhotoReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	tagsJSON, _ := json.Marshal(req.Tags)

	p.Title = req.Title
	p.Description = req.Description
	if req.ImageURL != "" {
		p.ImageURL = req.ImageURL
	}
	p.Category = req.Category
	p.Tags = datatypes.JSON(tagsJSON)
	p.Featured = req.Featured
	p.SortOrder = req.SortOrder

	if err := h.DB.Save(&p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update photo",
		})
	}

	h.Pub.Changed("photos", "update")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Photo updated",
		"data":    p,
	})
}

func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid photo ID",
		})
	}

	var p models.Photo
	if err := h.DB.First(&p, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Photo not found",
		})
	}

	if err := h.DB.Delete(&p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete photo",
		})
	}

	h.Pub.Changed("photos", "delete")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Photo deleted",
	})
}

var engagementColumns = map[string]string{
	"likes":     "likes",
	"downloads": "downloads",
	"shares":    "shares",
}

type EngagementReq struct {
	Stat string `json:"stat"`
}

// Engagement bumps one counter as a single atomic update, so concurrent
// clicks from different sessions all land. There is no idempotency key: a
// retried request after a timeout double-counts. Known limitation of the
// contract, not silently patched here.
func (h *PhotoHandler) Engagement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid photo ID",
		})
	}

	var req EngagementReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	col, ok := engagementColumns[req.Stat]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Unknown stat type",
		})
	}

	res := h.DB.Model(&models.Photo{}).
		Where("id = ?", id).
		Update(col, gorm.Expr(col+" + 1"))

	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update counter",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Photo not found",
		})
	}

	h.Pub.Changed("photos", "update")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Counter updated",
	})
}
