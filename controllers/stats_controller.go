package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StatsController struct {
	DB     *gorm.DB
	Logger *log.Logger
	Cache  *redis.Client // nil disables caching
	TTL    time.Duration
}

func NewStatsController(db *gorm.DB, cache *redis.Client, ttl time.Duration, logger *log.Logger) *StatsController {
	return &StatsController{DB: db, Logger: logger, Cache: cache, TTL: ttl}
}

var statsTypes = map[string]bool{
	"competitions": true,
	"average":      true,
	"total":        true,
}

type CompetitionStat struct {
	Competition string `json:"competition"`
	Color       string `json:"color"`
	Count       int    `json:"count"`
}

type AverageStats struct {
	AvgMembersCount float64 `json:"avg_members_count"`
	AvgRobotsCount  float64 `json:"avg_robots_count"`
}

type TotalStats struct {
	TotalTeams        int `json:"total_teams"`
	TotalMembersCount int `json:"total_members_count"`
	TotalRobotsCount  int `json:"total_robots_count"`
}

// GetStats handles GET /api/stats?year=&types=a,b. Each requested type is
// computed independently and cached under its own key.
func (sc *StatsController) GetStats(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	if year < 2000 || year > 2099 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year",
		})
	}

	typesParam := c.Query("types")
	if typesParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing stats types",
		})
	}

	seen := map[string]bool{}
	var types []string
	for _, t := range strings.Split(typesParam, ",") {
		t = strings.TrimSpace(t)
		if !statsTypes[t] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid stats type: %s", t),
			})
		}
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	results := fiber.Map{}
	for _, t := range types {
		value, err := sc.statsFor(t, year)
		if err != nil {
			sc.Logger.Printf("Failed to compute %s stats for %d: %v", t, year, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to compute stats",
			})
		}
		results[t] = value
	}

	return c.JSON(fiber.Map{"data": results})
}

func (sc *StatsController) statsFor(statsType string, year int) (interface{}, error) {
	cacheKey := fmt.Sprintf("stats:%d:%s", year, statsType)

	if sc.Cache != nil {
		if cached, err := sc.Cache.Get(context.Background(), cacheKey).Bytes(); err == nil {
			var value interface{}
			if err := json.Unmarshal(cached, &value); err == nil {
				return value, nil
			}
		}
	}

	var value interface{}
	var err error
	switch statsType {
	case "competitions":
		value, err = sc.competitionStats(year)
	case "average":
		value, err = sc.averageStats(year)
	case "total":
		value, err = sc.totalStats(year)
	}
	if err != nil {
		return nil, err
	}

	if sc.Cache != nil {
		if encoded, err := json.Marshal(value); err == nil {
			sc.Cache.Set(context.Background(), cacheKey, encoded, sc.TTL)
		}
	}

	return value, nil
}

func (sc *StatsController) competitionStats(year int) ([]CompetitionStat, error) {
	var stats []CompetitionStat
	err := sc.DB.Raw(`
		SELECT COALESCE(NULLIF(competition.display_name, ''), competition.name) AS competition,
		       competition.color,
		       COUNT(*) AS count
		FROM robot
		INNER JOIN competition ON robot.competition = competition.name
		WHERE robot.year = ?
		GROUP BY competition.name, competition.display_name, competition.color
		ORDER BY competition.display_name`, year).Scan(&stats).Error
	return stats, err
}

func (sc *StatsController) averageStats(year int) (*AverageStats, error) {
	var stats AverageStats
	err := sc.DB.Raw(`
		SELECT COALESCE(AVG(members_count), 0) AS avg_members_count,
		       COALESCE(AVG(robots_count), 0) AS avg_robots_count
		FROM (
			SELECT (SELECT COUNT(*) FROM team_participant tp WHERE tp.team_id = t.id) AS members_count,
			       (SELECT COUNT(*) FROM robot r WHERE r.team_id = t.id) AS robots_count
			FROM team t
			WHERE t.year = ?
		) counts`, year).Scan(&stats).Error
	return &stats, err
}

func (sc *StatsController) totalStats(year int) (*TotalStats, error) {
	var stats TotalStats
	err := sc.DB.Raw(`
		SELECT COUNT(*) AS total_teams,
		       COALESCE(SUM(members_count), 0) AS total_members_count,
		       COALESCE(SUM(robots_count), 0) AS total_robots_count
		FROM (
			SELECT (SELECT COUNT(*) FROM team_participant tp WHERE tp.team_id = t.id) AS members_count,
			       (SELECT COUNT(*) FROM robot r WHERE r.team_id = t.id) AS robots_count
			FROM team t
			WHERE t.year = ?
		) counts`, year).Scan(&stats).Error
	return &stats, err
}
