package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robocomp/models"
)

type TeamController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewTeamController(db *gorm.DB, logger *log.Logger) *TeamController {
	return &TeamController{DB: db, Logger: logger}
}

// TeamSummary is one row of the team list with membership aggregates.
type TeamSummary struct {
	TeamID       uint   `json:"team_id"`
	TeamName     string `json:"team_name"`
	Year         int    `json:"year"`
	TeamStatus   string `json:"team_status"`
	MembersCount int    `json:"members_count"`
	RobotsCount  int    `json:"robots_count"`
}

// GetTeams handles GET /api/teams?year=.
func (tc *TeamController) GetTeams(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())

	var teams []TeamSummary
	err := tc.DB.Raw(`
		SELECT t.id AS team_id,
		       t.name AS team_name,
		       t.year,
		       t.status AS team_status,
		       (SELECT COUNT(*) FROM team_participant tp WHERE tp.team_id = t.id) AS members_count,
		       (SELECT COUNT(*) FROM robot r WHERE r.team_id = t.id) AS robots_count
		FROM team t
		WHERE t.year = ?
		ORDER BY t.name`, year).Scan(&teams).Error
	if err != nil {
		tc.Logger.Printf("Failed to list teams: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch teams",
		})
	}

	return c.JSON(fiber.Map{"teams": teams})
}

// TeamRobot is a robot row with its competition display name.
type TeamRobot struct {
	models.Robot
	CompetitionDisplayName string `json:"competition_display_name"`
}

// TeamMember is a participant row joined with its membership info.
type TeamMember struct {
	models.Participant
	Role             string `json:"role"`
	MembershipStatus string `json:"membership_status"`
	ReceivedTshirt   bool   `json:"received_tshirt"`
}

// GetTeam handles GET /api/teams/:id.
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid team id",
		})
	}

	var team models.Team
	if err := tc.DB.First(&team, teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Team not found",
			})
		}
		tc.Logger.Printf("Failed to fetch team %d: %v", teamID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch team",
		})
	}

	var robots []TeamRobot
	err = tc.DB.Raw(`
		SELECT robot.*, competition.display_name AS competition_display_name
		FROM robot
		INNER JOIN competition ON robot.competition = competition.name
		WHERE robot.team_id = ?
		ORDER BY robot.robot_no`, teamID).Scan(&robots).Error
	if err != nil {
		tc.Logger.Printf("Failed to fetch robots for team %d: %v", teamID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch team",
		})
	}

	var participants []TeamMember
	err = tc.DB.Raw(`
		SELECT p.*, tp.role, tp.status AS membership_status, tp.received_tshirt
		FROM team_participant tp
		INNER JOIN participant p ON tp.participant_id = p.id
		WHERE tp.team_id = ?
		ORDER BY tp.role, p.last_name`, teamID).Scan(&participants).Error
	if err != nil {
		tc.Logger.Printf("Failed to fetch participants for team %d: %v", teamID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch team",
		})
	}

	return c.JSON(fiber.Map{
		"team":         team,
		"robots":       robots,
		"participants": participants,
	})
}

// TeamExists handles GET /api/teams/exists?name=&year=. Registrant-side
// duplicate pre-check; the registrar itself never deduplicates.
func (tc *TeamController) TeamExists(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing or invalid team name",
		})
	}
	year := c.QueryInt("year", time.Now().Year())

	var count int64
	if err := tc.DB.Model(&models.Team{}).Where("name = ? AND year = ?", name, year).Count(&count).Error; err != nil {
		tc.Logger.Printf("Failed to check team existence: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check team existence",
		})
	}

	return c.JSON(fiber.Map{"is_exist": count > 0})
}
