package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
)

// Icon identifiers the frontend knows how to render. Anything else falls back
// to defaultIcon instead of a reflective lookup against the icon library.
var allowedIcons = map[string]bool{
	"camera": true,
	"heart":  true,
	"award":  true,
	"users":  true,
	"star":   true,
	"image":  true,
	"globe":  true,
	"code":   true,
	"clock":  true,
}

const defaultIcon = "star"

func normalizeIcon(icon string) string {
	icon = strings.ToLower(strings.TrimSpace(icon))
	if allowedIcons[icon] {
		return icon
	}
	return defaultIcon
}

type AboutHandler struct {
	DB  *gorm.DB
	Pub *realtime.Publisher
}

func NewAboutHandler(db *gorm.DB, pub *realtime.Publisher) *AboutHandler {
	return &AboutHandler{DB: db, Pub: pub}
}

// ==== PUBLIC READS ====

func (h *AboutHandler) GetHeroStats(c *fiber.Ctx) error {
	var stats []models.HeroStat
	if err := h.DB.Order("sort_order ASC").Find(&stats).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch hero stats",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

func (h *AboutHandler) GetAchievements(c *fiber.Ctx) error {
	var items []models.Achievement
	if err := h.DB.Order("sort_order ASC").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch achievements",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *AboutHandler) GetSkills(c *fiber.Ctx) error {
	var items []models.Skill
	if err := h.DB.Order("sort_order ASC").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch skills",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *AboutHandler) GetServices(c *fiber.Ctx) error {
	var items []models.AboutService
	if err := h.DB.Order("sort_order ASC").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch services",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *AboutHandler) GetContent(c *fiber.Ctx) error {
	key := c.Params("key")

	var content models.Content
	if err := h.DB.Where("section_key = ?", key).First(&content).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Content section not found",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": content})
}

// ==== ADMIN: HERO STATS ====

type StatReq struct {
	Icon      string `json:"icon"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order"`
}

func (h *AboutHandler) CreateHeroStat(c *fiber.Ctx) error {
	var req StatReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}
	if req.Value == "" || req.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Value and label are required",
		})
	}

	stat := models.HeroStat{
		Icon:      normalizeIcon(req.Icon),
		Value:     req.Value,
		Label:     req.Label,
		SortOrder: req.SortOrder,
	}
	if err := h.DB.Create(&stat).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save hero stat",
		})
	}

	h.Pub.Changed("hero_stats", "insert")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": stat})
}

func (h *AboutHandler) UpdateHeroStat(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid ID",
		})
	}

	var stat models.HeroStat
	if err := h.DB.First(&stat, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Hero stat not found",
		})
	}

	var req StatReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	stat.Icon = normalizeIcon(req.Icon)
	stat.Value = req.Value
	stat.Label = req.Label
	stat.SortOrder = req.SortOrder

	if err := h.DB.Save(&stat).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update hero stat",
		})
	}

	h.Pub.Changed("hero_stats", "update")
	return c.JSON(fiber.Map{"success": true, "data": stat})
}

func (h *AboutHandler) DeleteHeroStat(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.HeroStat{}, "hero_stats", "Hero stat")
}

// ==== ADMIN: ACHIEVEMENTS ====

func (h *AboutHandler) CreateAchievement(c *fiber.Ctx) error {
	var req StatReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}
	if req.Value == "" || req.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Value and label are required",
		})
	}

	item := models.Achievement{
		Icon:      normalizeIcon(req.Icon),
		Value:     req.Value,
		Label:     req.Label,
		SortOrder: req.SortOrder,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save achievement",
		})
	}

	h.Pub.Changed("about_achievements", "insert")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

func (h *AboutHandler) UpdateAchievement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid ID",
		})
	}

	var item models.Achievement
	if err := h.DB.First(&item, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Achievement not found",
		})
	}

	var req StatReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	item.Icon = normalizeIcon(req.Icon)
	item.Value = req.Value
	item.Label = req.Label
	item.SortOrder = req.SortOrder

	if err := h.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update achievement",
		})
	}

	h.Pub.Changed("about_achievements", "update")
	return c.JSON(fiber.Map{"success": true, "data": item})
}

func (h *AboutHandler) DeleteAchievement(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.Achievement{}, "about_achievements", "Achievement")
}

// ==== ADMIN: SKILLS ====

type SkillReq struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	SortOrder  int    `json:"sort_order"`
}

func (h *AboutHandler) CreateSkill(c *fiber.Ctx) error {
	var req SkillReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	errors := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		errors.Add("name", "Name is required")
	}
	if req.Percentage < 0 || req.Percentage > 100 {
		errors.Add("percentage", "Percentage must be between 0 and 100")
	}
	if len(errors) > 0 {
		return validationFail(c, errors)
	}

	skill := models.Skill{
		Name:       req.Name,
		Percentage: req.Percentage,
		SortOrder:  req.SortOrder,
	}
	if err := h.DB.Create(&skill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save skill",
		})
	}

	h.Pub.Changed("about_skills", "insert")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": skill})
}

func (h *AboutHandler) UpdateSkill(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid ID",
		})
	}

	var skill models.Skill
	if err := h.DB.First(&skill, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Skill not found",
		})
	}

	var req SkillReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if req.Percentage < 0 || req.Percentage > 100 {
		errs := FieldErrors{}
		errs.Add("percentage", "Percentage must be between 0 and 100")
		return validationFail(c, errs)
	}

	skill.Name = req.Name
	skill.Percentage = req.Percentage
	skill.SortOrder = req.SortOrder

	if err := h.DB.Save(&skill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update skill",
		})
	}

	h.Pub.Changed("about_skills", "update")
	return c.JSON(fiber.Map{"success": true, "data": skill})
}

func (h *AboutHandler) DeleteSkill(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.Skill{}, "about_skills", "Skill")
}

// ==== ADMIN: SERVICES ====

type ServiceReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Specialties []string `json:"specialties"`
	SortOrder   int      `json:"sort_order"`
}

func (h *AboutHandler) CreateService(c *fiber.Ctx) error {
	var req ServiceReq
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

	specJSON, _ := json.Marshal(req.Specialties)

	svc := models.AboutService{
		Title:       req.Title,
		Description: req.Description,
		Specialties: datatypes.JSON(specJSON),
		SortOrder:   req.SortOrder,
	}
	if err := h.DB.Create(&svc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save service",
		})
	}

	h.Pub.Changed("about_services", "insert")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": svc})
}

func (h *AboutHandler) UpdateService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid ID",
		})
	}

	var svc models.AboutService
	if err := h.DB.First(&svc, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Service not found",
		})
	}

	var req ServiceReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	specJSON, _ := json.Marshal(req.Specialties)

	svc.Title = req.Title
	svc.Description = req.Description
	svc.Specialties = datatypes.JSON(specJSON)
	svc.SortOrder = req.SortOrder

	if err := h.DB.Save(&svc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update service",
		})
	}

	h.Pub.Changed("about_services", "update")
	return c.JSON(fiber.Map{"success": true, "data": svc})
}

func (h *AboutHandler) DeleteService(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.AboutService{}, "about_services", "Service")
}

// ==== ADMIN: CONTENT ====

type ContentReq struct {
	SectionKey  string `json:"section_key"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ButtonText  string `json:"button_text"`
}

// UpsertContent creates or updates the row for a section key. Content rows
// are never deleted.
func (h *AboutHandler) UpsertContent(c *fiber.Ctx) error {
	var req ContentReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	key := strings.TrimSpace(req.SectionKey)
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Section key is required",
		})
	}

	var content models.Content
	err := h.DB.Where("section_key = ?", key).First(&content).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	content.SectionKey = key
	content.Title = req.Title
	content.Subtitle = req.Subtitle
	content.Description = req.Description
	content.ButtonText = req.ButtonText

	if err := h.DB.Save(&content).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save content",
		})
	}

	h.Pub.Changed("about_content", "update")
	return c.JSON(fiber.Map{"success": true, "data": content})
}

// deleteByID is the shared delete path for the small about-page tables.
func (h *AboutHandler) deleteByID(c *fiber.Ctx, model interface{}, table, label string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid ID",
		})
	}

	res := h.DB.Delete(model, "id = ?", id)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete " + strings.ToLower(label),
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": label + " not found",
		})
	}

	h.Pub.Changed(table, "delete")
	return c.JSON(fiber.Map{
		"success": true,
		"message": label + " deleted",
	})
}
