package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
)

type PricingHandler struct {
	DB  *gorm.DB
	Pub *realtime.Publisher
}

func NewPricingHandler(db *gorm.DB, pub *realtime.Publisher) *PricingHandler {
	return &PricingHandler{DB: db, Pub: pub}
}

// Base prices and add-on prices for the public calculator.
var servicePrices = map[string]int64{
	"wedding_basic":    8500000,
	"wedding_premium":  18500000,
	"portrait_session": 1500000,
	"product_shoot":    2500000,
	"web_starter":      5000000,
	"web_business":     12000000,
}

var addonPrices = map[string]int64{
	"extra_hour":     750000,
	"second_shooter": 1500000,
	"printed_album":  2000000,
	"drone":          1250000,
	"rush_delivery":  1000000,
	"seo_setup":      1500000,
}

type EstimateReq struct {
	Service      string   `json:"service"`
	Addons       []string `json:"addons"`
	ContactName  string   `json:"contact_name"`
	ContactEmail string   `json:"contact_email"`
}

func (h *PricingHandler) Estimate(c *fiber.Ctx) error {
	var req EstimateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	base, ok := servicePrices[req.Service]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Unknown service",
		})
	}

	total := base
	for _, a := range req.Addons {
		price, ok := addonPrices[a]
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Unknown addon: " + a,
			})
		}
		total += price
	}

	selections, _ := json.Marshal(fiber.Map{
		"service": req.Service,
		"addons":  req.Addons,
	})

	entry := models.PriceCalculatorLog{
		Selections:     datatypes.JSON(selections),
		EstimatedTotal: total,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
	}

	if err := h.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to log estimate",
		})
	}

	h.Pub.Changed("price_calculator_logs", "insert")

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"estimated_total": total,
		},
	})
}

func (h *PricingHandler) ListLogs(c *fiber.Ctx) error {
	var logs []models.PriceCalculatorLog
	if err := h.DB.Order("created_at DESC").Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch calculator logs",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": logs})
}
