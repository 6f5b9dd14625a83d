package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/quiz"
	"github.com/lensakita/studio_be/internal/realtime"
)

type QuizHandler struct {
	DB  *gorm.DB
	Pub *realtime.Publisher
}

func NewQuizHandler(db *gorm.DB, pub *realtime.Publisher) *QuizHandler {
	return &QuizHandler{DB: db, Pub: pub}
}

type QuizSubmitReq struct {
	Answers      map[string]string `json:"answers"` // question id -> option id
	ContactName  string            `json:"contact_name"`
	ContactEmail string            `json:"contact_email"`
}

// Submit scores the answers and persists the run as an audit record.
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	var req QuizSubmitReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	recommended, scores, err := quiz.Recommend(req.Answers)
	if err == quiz.ErrNoAnswers {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No answers submitted",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	answersJSON, _ := json.Marshal(req.Answers)

	result := models.QuizResult{
		Answers:            datatypes.JSON(answersJSON),
		RecommendedPackage: recommended,
		ContactName:        req.ContactName,
		ContactEmail:       req.ContactEmail,
	}

	if err := h.DB.Create(&result).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save quiz result",
		})
	}

	h.Pub.Changed("quiz_results", "insert")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":                  result.ID,
			"recommended_package": recommended,
			"scores":              scores,
		},
	})
}

func (h *QuizHandler) List(c *fiber.Ctx) error {
	var results []models.QuizResult
	if err := h.DB.Order("created_at DESC").Find(&results).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch quiz results",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": results})
}
