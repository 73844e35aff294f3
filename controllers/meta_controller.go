package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robocomp/models"
)

// MetaController serves the reference lists consumed by the registration
// form.
type MetaController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewMetaController(db *gorm.DB, logger *log.Logger) *MetaController {
	return &MetaController{DB: db, Logger: logger}
}

// GetCompetitions handles GET /api/competitions.
func (mc *MetaController) GetCompetitions(c *fiber.Ctx) error {
	var competitions []models.Competition
	if err := mc.DB.Where("active = ?", true).Order("display_name").Find(&competitions).Error; err != nil {
		mc.Logger.Printf("Failed to list competitions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch competitions",
		})
	}
	return c.JSON(fiber.Map{"competitions": competitions})
}

// GetCountries handles GET /api/countries.
func (mc *MetaController) GetCountries(c *fiber.Ctx) error {
	var countries []models.Country
	if err := mc.DB.Order("name").Find(&countries).Error; err != nil {
		mc.Logger.Printf("Failed to list countries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch countries",
		})
	}
	return c.JSON(fiber.Map{"countries": countries})
}
