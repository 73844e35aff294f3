package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"robocomp/models"
	"robocomp/registration"
)

func newControllerTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "gorm.Open failed")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Competition{},
		&models.Country{},
		&models.Team{},
		&models.Participant{},
		&models.TeamParticipant{},
		&models.ParticipantAddress{},
		&models.Robot{},
		&models.Schedule{},
	)
	require.NoError(t, err, "migration failed")
	require.NoError(t, models.CreateDefaultCompetitions(db))
	require.NoError(t, models.CreateDefaultCountries(db))

	return db
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newRegistrationApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := newControllerTestDB(t)
	app := fiber.New()
	rc := NewRegistrationController(db, nil, testLogger())
	app.Post("/api/registration", rc.SubmitRegistration)
	return app, db
}

func postRegistration(t *testing.T, app *fiber.App, payload string) (*http.Response, fiber.Map) {
	req := httptest.NewRequest(http.MethodPost, "/api/registration", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body fiber.Map
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

const validPayload = `{
	"teamName": "Byte Busters",
	"captain": {
		"name": "Anna", "surname": "Kowalska", "shirtSize": "M",
		"email": "a@b.com", "phone": "123456789", "street": "Main 1",
		"postalCode": "00-001", "city": "Warsaw", "country": "PL"
	},
	"participants": [],
	"robots": [{"name": "Bot1", "category": "sumo-mini"}],
	"agreePrivacy": true,
	"agreeTerms": true
}`

func TestSubmitRegistrationSuccess(t *testing.T) {
	app, db := newRegistrationApp(t)

	resp, body := postRegistration(t, app, validPayload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, registration.CorrectAdding, body["status_code"])
	assert.Equal(t, "CorrectAdding", body["status"])

	var teams, participants, joins, addresses, robots int64
	db.Model(&models.Team{}).Count(&teams)
	db.Model(&models.Participant{}).Count(&participants)
	db.Model(&models.TeamParticipant{}).Count(&joins)
	db.Model(&models.ParticipantAddress{}).Count(&addresses)
	db.Model(&models.Robot{}).Count(&robots)
	assert.EqualValues(t, 1, teams)
	assert.EqualValues(t, 1, participants)
	assert.EqualValues(t, 1, joins)
	assert.EqualValues(t, 1, addresses)
	assert.EqualValues(t, 1, robots)

	var leader models.TeamParticipant
	require.NoError(t, db.First(&leader).Error)
	assert.Equal(t, models.RoleLeader, leader.Role)
}

func TestSubmitRegistrationInvalidPostalCode(t *testing.T) {
	app, db := newRegistrationApp(t)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validPayload), &payload))
	payload["captain"].(map[string]interface{})["postalCode"] = "1"
	encoded, _ := json.Marshal(payload)

	resp, body := postRegistration(t, app, string(encoded))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.EqualValues(t, registration.InvalidCaptain, body["status_code"])

	var teams int64
	db.Model(&models.Team{}).Count(&teams)
	assert.EqualValues(t, 0, teams, "rejected submissions write nothing")
}

func TestSubmitRegistrationMissingConsent(t *testing.T) {
	app, _ := newRegistrationApp(t)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validPayload), &payload))
	payload["agreeTerms"] = false
	encoded, _ := json.Marshal(payload)

	resp, body := postRegistration(t, app, string(encoded))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.EqualValues(t, registration.MissingConsent, body["status_code"])
}

func TestSubmitRegistrationDatabaseFail(t *testing.T) {
	app, db := newRegistrationApp(t)
	require.NoError(t, db.Migrator().DropTable(&models.Robot{}))

	resp, body := postRegistration(t, app, validPayload)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.EqualValues(t, registration.DatabaseFail, body["status_code"])

	var teams int64
	db.Model(&models.Team{}).Count(&teams)
	assert.EqualValues(t, 0, teams, "failed submissions leave no partial rows")
}

func TestSubmitRegistrationTwiceCreatesTwoTeams(t *testing.T) {
	app, db := newRegistrationApp(t)

	resp, _ := postRegistration(t, app, validPayload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = postRegistration(t, app, validPayload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var teams int64
	db.Model(&models.Team{}).Where("name = ?", "Byte Busters").Count(&teams)
	assert.EqualValues(t, 2, teams)
}

func TestSubmitRegistrationBadBody(t *testing.T) {
	app, _ := newRegistrationApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/registration", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
