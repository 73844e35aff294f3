package routes

import (
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"robocomp/config"
	controller "robocomp/controllers"
	"robocomp/middleware"
	"robocomp/registration"
)

// SetupRoutes wires the HTTP surface: the public registration pipeline and
// read endpoints, plus the organizer-only PATCH endpoints behind JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB, notifier registration.Notifier) {
	registrationController := controller.NewRegistrationController(db, notifier,
		log.New(os.Stdout, "REGISTRATION: ", log.Ldate|log.Ltime|log.Lshortfile))
	teamController := controller.NewTeamController(db, log.New(os.Stdout, "TEAM: ", log.LstdFlags))
	participantController := controller.NewParticipantController(db, log.New(os.Stdout, "PARTICIPANT: ", log.LstdFlags))
	robotController := controller.NewRobotController(db, log.New(os.Stdout, "ROBOT: ", log.LstdFlags))
	scheduleController := controller.NewScheduleController(db, log.New(os.Stdout, "SCHEDULE: ", log.LstdFlags))
	metaController := controller.NewMetaController(db, log.New(os.Stdout, "META: ", log.LstdFlags))
	statsController := controller.NewStatsController(db, statsCache(),
		time.Duration(config.AppConfig.StatsCacheDuration)*time.Second,
		log.New(os.Stdout, "STATS: ", log.LstdFlags))

	// Auth routes
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/login", controller.Login)
	auth.Get("/me", middleware.Protected(), controller.GetCurrentUser)

	// Public API
	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	api.Post("/registration", middleware.RegistrationRateLimiter(), registrationController.SubmitRegistration)

	api.Get("/teams", teamController.GetTeams)
	api.Get("/teams/exists", teamController.TeamExists)
	api.Get("/teams/:id", teamController.GetTeam)

	api.Get("/stats", statsController.GetStats)
	api.Get("/schedule", scheduleController.GetSchedule)
	api.Get("/competitions", metaController.GetCompetitions)
	api.Get("/countries", metaController.GetCountries)

	// Organizer-only updates
	api.Patch("/participants/:id", middleware.Protected(), participantController.UpdateParticipant)
	api.Patch("/robots/:id", middleware.Protected(), robotController.UpdateRobot)
}

func statsCache() *redis.Client {
	if !config.AppConfig.Redis.Enabled {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.Redis.Address,
		Password: config.AppConfig.Redis.Password,
		DB:       config.AppConfig.Redis.DB,
	})
}
