package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robocomp/models"
	"robocomp/utils"
)

type RobotController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewRobotController(db *gorm.DB, logger *log.Logger) *RobotController {
	return &RobotController{DB: db, Logger: logger}
}

type UpdateRobotRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Competition *string `json:"competition" validate:"omitempty,min=1,max=100"`
	Status      *string `json:"status" validate:"omitempty,oneof=registered confirmed resigned"`
}

// UpdateRobot handles PATCH /api/robots/:id.
func (rc *RobotController) UpdateRobot(c *fiber.Ctx) error {
	robotID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid robot id",
		})
	}

	var req UpdateRobotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Competition != nil {
		updates["competition"] = *req.Competition
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	result := rc.DB.Model(&models.Robot{}).Where("id = ?", robotID).Updates(updates)
	if result.Error != nil {
		rc.Logger.Printf("Failed to update robot %d: %v", robotID, result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update robot",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Robot not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
