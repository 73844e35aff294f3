package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := newControllerTestDB(t)
	app := fiber.New()
	sc := NewStatsController(db, nil, time.Minute, testLogger())
	app.Get("/api/stats", sc.GetStats)
	return app, db
}

func TestGetStatsTotalsAndAverages(t *testing.T) {
	app, db := newStatsApp(t)
	registerTeam(t, db, "Alpha", 3, 2) // 4 members, 2 robots
	registerTeam(t, db, "Beta", 1, 4)  // 2 members, 4 robots

	year := time.Now().Year()
	resp, body := getJSON(t, app, fmt.Sprintf("/api/stats?year=%d&types=total,average", year))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})

	total := data["total"].(map[string]interface{})
	assert.EqualValues(t, 2, total["total_teams"])
	assert.EqualValues(t, 6, total["total_members_count"])
	assert.EqualValues(t, 6, total["total_robots_count"])

	average := data["average"].(map[string]interface{})
	assert.EqualValues(t, 3, average["avg_members_count"])
	assert.EqualValues(t, 3, average["avg_robots_count"])
}

func TestGetStatsCompetitions(t *testing.T) {
	app, db := newStatsApp(t)
	registerTeam(t, db, "Alpha", 0, 3) // 3 robots in sumo-mini

	year := time.Now().Year()
	resp, body := getJSON(t, app, fmt.Sprintf("/api/stats?year=%d&types=competitions", year))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	competitions := data["competitions"].([]interface{})
	require.Len(t, competitions, 1)

	stat := competitions[0].(map[string]interface{})
	assert.Equal(t, "Mini Sumo", stat["competition"])
	assert.EqualValues(t, 3, stat["count"])
}

func TestGetStatsRejectsBadInput(t *testing.T) {
	app, _ := newStatsApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats?types=total&year=1850", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/stats?types=bogus", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
