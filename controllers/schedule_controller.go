package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewScheduleController(db *gorm.DB, logger *log.Logger) *ScheduleController {
	return &ScheduleController{DB: db, Logger: logger}
}

type ScheduleEntry struct {
	ID                     uint      `json:"id"`
	Name                   string    `json:"name"`
	Type                   string    `json:"type"`
	StartDate              time.Time `json:"start_date"`
	EndDate                time.Time `json:"end_date"`
	Competition            string    `json:"competition"`
	CompetitionDisplayName string    `json:"competition_display_name"`
}

// GetSchedule handles GET /api/schedule?year=. Entries under the "events"
// pseudo-competition are returned separately from competition slots.
func (sc *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	if year < 2000 || year > 2099 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year",
		})
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var entries []ScheduleEntry
	err := sc.DB.Raw(`
		SELECT schedule.id,
		       schedule.name,
		       schedule.type,
		       schedule.start_date,
		       schedule.end_date,
		       schedule.competition,
		       COALESCE(competition.display_name, schedule.competition) AS competition_display_name
		FROM schedule
		LEFT JOIN competition ON schedule.competition = competition.name
		WHERE schedule.start_date >= ? AND schedule.start_date < ?
		ORDER BY schedule.start_date`, from, to).Scan(&entries).Error
	if err != nil {
		sc.Logger.Printf("Failed to fetch schedule for %d: %v", year, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch schedule",
		})
	}

	var results []ScheduleEntry
	var events []ScheduleEntry
	competitionNames := map[string]bool{}
	for _, entry := range entries {
		if entry.Competition == "events" {
			events = append(events, entry)
			continue
		}
		results = append(results, entry)
		competitionNames[entry.CompetitionDisplayName] = true
	}

	names := make([]string, 0, len(competitionNames))
	for name := range competitionNames {
		names = append(names, name)
	}

	return c.JSON(fiber.Map{
		"results":           results,
		"events":            events,
		"competition_names": names,
	})
}
