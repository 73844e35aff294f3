package controller

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robocomp/models"
)

func TestGetSchedule(t *testing.T) {
	db := newControllerTestDB(t)
	app := fiber.New()
	sc := NewScheduleController(db, testLogger())
	app.Get("/api/schedule", sc.GetSchedule)

	year := time.Now().Year()
	day := time.Date(year, time.October, 18, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]models.Schedule{
		{Competition: "sumo-mini", Name: "Eliminations Mini Sumo", Type: "eliminations", StartDate: day, EndDate: day.Add(2 * time.Hour)},
		{Competition: "micromouse", Name: "Finals Micromouse", Type: "finals", StartDate: day.Add(4 * time.Hour), EndDate: day.Add(5 * time.Hour)},
		{Competition: "events", Name: "Opening Ceremony", Type: "event", StartDate: day.Add(-time.Hour), EndDate: day},
		// Previous year entry must not show up.
		{Competition: "sumo-mini", Name: "Old Slot", Type: "eliminations", StartDate: day.AddDate(-1, 0, 0), EndDate: day.AddDate(-1, 0, 0).Add(time.Hour)},
	}).Error)

	resp, body := getJSON(t, app, fmt.Sprintf("/api/schedule?year=%d", year))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	results := body["results"].([]interface{})
	require.Len(t, results, 2)
	first := results[0].(map[string]interface{})
	assert.Equal(t, "Eliminations Mini Sumo", first["name"])
	assert.Equal(t, "Mini Sumo", first["competition_display_name"])

	events := body["events"].([]interface{})
	require.Len(t, events, 1)
	assert.Equal(t, "Opening Ceremony", events[0].(map[string]interface{})["name"])

	names := body["competition_names"].([]interface{})
	assert.Len(t, names, 2)
}
