package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robocomp/registration"
)

type RegistrationController struct {
	service *registration.Service
	Logger  *log.Logger
}

func NewRegistrationController(db *gorm.DB, notifier registration.Notifier, logger *log.Logger) *RegistrationController {
	return &RegistrationController{
		service: registration.NewService(db, notifier, logger),
		Logger:  logger,
	}
}

// SubmitRegistration handles POST /api/registration. The response body
// always carries the outcome code and its message; clients branch on
// status_code.
func (rc *RegistrationController) SubmitRegistration(c *fiber.Ctx) error {
	var sub registration.Submission
	if err := c.BodyParser(&sub); err != nil {
		rc.Logger.Printf("Error parsing registration body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	outcome := rc.service.Submit(sub)

	return c.Status(httpStatusFor(outcome)).JSON(fiber.Map{
		"status_code": outcome,
		"status":      outcome.String(),
		"message":     outcome.Message(),
	})
}

func httpStatusFor(outcome registration.Outcome) int {
	switch outcome {
	case registration.CorrectAdding:
		return fiber.StatusCreated
	case registration.DatabaseFail:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusUnprocessableEntity
	}
}
