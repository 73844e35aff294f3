package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robocomp/models"
	"robocomp/utils"
)

type ParticipantController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewParticipantController(db *gorm.DB, logger *log.Logger) *ParticipantController {
	return &ParticipantController{DB: db, Logger: logger}
}

type UpdateParticipantRequest struct {
	Status         *string `json:"status" validate:"omitempty,oneof=registered confirmed resigned"`
	ReceivedTshirt *bool   `json:"received_tshirt"`
	FirstName      *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName       *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Size           *string `json:"size" validate:"omitempty,oneof=S M L XL XXL"`
}

// UpdateParticipant handles PATCH /api/participants/:id?teamId=. Membership
// fields update the join row scoped to the team; personal fields update the
// participant row itself.
func (pc *ParticipantController) UpdateParticipant(c *fiber.Ctx) error {
	participantID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid participant id",
		})
	}

	teamID := c.QueryInt("teamId", 0)
	if teamID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "teamId query parameter is required and must be a number",
		})
	}

	var req UpdateParticipantRequest
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

	membershipUpdates := map[string]interface{}{}
	if req.Status != nil {
		membershipUpdates["status"] = *req.Status
	}
	if req.ReceivedTshirt != nil {
		membershipUpdates["received_tshirt"] = *req.ReceivedTshirt
	}

	participantUpdates := map[string]interface{}{}
	if req.FirstName != nil {
		participantUpdates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		participantUpdates["last_name"] = *req.LastName
	}
	if req.Size != nil {
		participantUpdates["size"] = *req.Size
	}

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if len(membershipUpdates) > 0 {
			result := tx.Model(&models.TeamParticipant{}).
				Where("participant_id = ? AND team_id = ?", participantID, teamID).
				Updates(membershipUpdates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		if len(participantUpdates) > 0 {
			if err := tx.Model(&models.Participant{}).
				Where("id = ?", participantID).
				Updates(participantUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Participant is not a member of this team",
			})
		}
		pc.Logger.Printf("Failed to update participant %d: %v", participantID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update participant",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
