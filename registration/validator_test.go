package registration

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmission() Submission {
	return Submission{
		TeamName: "Byte Busters",
		Captain: Captain{
			Name:       "Anna",
			Surname:    "Kowalska",
			ShirtSize:  "M",
			Email:      "a@b.com",
			Phone:      "123456789",
			Street:     "Main 1",
			PostalCode: "00-001",
			City:       "Warsaw",
			Country:    "PL",
		},
		Participants: []Member{},
		Robots:       []Robot{{Name: "Bot1", Category: "sumo-mini"}},
		AgreePrivacy: true,
		AgreeTerms:   true,
	}
}

func TestValidateAcceptsValidSubmission(t *testing.T) {
	assert.Equal(t, CorrectAdding, Validate(validSubmission()))
}

func TestValidateTeamName(t *testing.T) {
	tests := []struct {
		name     string
		teamName string
		want     Outcome
	}{
		{"empty", "", InvalidTeamName},
		{"too long", strings.Repeat("x", 51), InvalidTeamName},
		{"max length", strings.Repeat("x", 50), CorrectAdding},
		{"single char", "x", CorrectAdding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			sub.TeamName = tt.teamName
			assert.Equal(t, tt.want, Validate(sub))
		})
	}
}

func TestValidateCaptain(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Captain)
		want   Outcome
	}{
		{"empty name", func(c *Captain) { c.Name = "" }, InvalidCaptain},
		{"long surname", func(c *Captain) { c.Surname = strings.Repeat("x", 51) }, InvalidCaptain},
		{"bad shirt size", func(c *Captain) { c.ShirtSize = "XS" }, InvalidCaptain},
		{"not an email", func(c *Captain) { c.Email = "not-an-email" }, InvalidCaptain},
		{"empty email", func(c *Captain) { c.Email = "" }, InvalidCaptain},
		{"letters in phone", func(c *Captain) { c.Phone = "12345abcd" }, InvalidCaptain},
		{"phone too short", func(c *Captain) { c.Phone = "12345" }, InvalidCaptain},
		{"international phone", func(c *Captain) { c.Phone = "+48123456789" }, CorrectAdding},
		{"empty street", func(c *Captain) { c.Street = "" }, InvalidCaptain},
		{"short postal code", func(c *Captain) { c.PostalCode = "1" }, InvalidCaptain},
		{"postal code wrong shape", func(c *Captain) { c.PostalCode = "000-01" }, InvalidCaptain},
		{"empty city", func(c *Captain) { c.City = "" }, InvalidCaptain},
		{"three letter country", func(c *Captain) { c.Country = "POL" }, InvalidCaptain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub.Captain)
			assert.Equal(t, tt.want, Validate(sub))
		})
	}
}

func TestValidateParticipants(t *testing.T) {
	sub := validSubmission()
	for i := 0; i < 9; i++ {
		sub.Participants = append(sub.Participants, Member{Name: "Jan", Surname: "Nowak", ShirtSize: "L"})
	}
	assert.Equal(t, CorrectAdding, Validate(sub), "9 members plus captain is allowed")

	sub.Participants = append(sub.Participants, Member{Name: "Jan", Surname: "Nowak", ShirtSize: "L"})
	assert.Equal(t, InvalidParticipant, Validate(sub), "10 members plus captain is too many")

	sub = validSubmission()
	sub.Participants = []Member{{Name: "Jan", Surname: "", ShirtSize: "L"}}
	assert.Equal(t, InvalidParticipant, Validate(sub))

	sub = validSubmission()
	sub.Participants = []Member{{Name: "Jan", Surname: "Nowak", ShirtSize: "huge"}}
	assert.Equal(t, InvalidParticipant, Validate(sub))
}

func TestValidateRobots(t *testing.T) {
	sub := validSubmission()
	sub.Robots = nil
	assert.Equal(t, InvalidRobot, Validate(sub), "at least one robot is required")

	sub = validSubmission()
	for i := 0; i < 6; i++ {
		sub.Robots = append(sub.Robots, Robot{Name: "Bot", Category: "sumo-mini"})
	}
	assert.Equal(t, InvalidRobot, Validate(sub), "more than 5 robots is rejected")

	sub = validSubmission()
	sub.Robots = []Robot{{Name: "Bot1", Category: ""}}
	assert.Equal(t, InvalidRobot, Validate(sub))
}

func TestValidateConsents(t *testing.T) {
	sub := validSubmission()
	sub.AgreeTerms = false
	assert.Equal(t, MissingConsent, Validate(sub))

	sub = validSubmission()
	sub.AgreePrivacy = false
	assert.Equal(t, MissingConsent, Validate(sub))
}

func TestValidateRuleOrder(t *testing.T) {
	// A submission failing several rules reports the first one.
	sub := validSubmission()
	sub.TeamName = ""
	sub.Captain.Email = "not-an-email"
	sub.Robots = nil
	sub.AgreeTerms = false
	assert.Equal(t, InvalidTeamName, Validate(sub))

	sub.TeamName = "Byte Busters"
	assert.Equal(t, InvalidCaptain, Validate(sub))

	sub.Captain.Email = "a@b.com"
	assert.Equal(t, InvalidRobot, Validate(sub))

	sub.Robots = []Robot{{Name: "Bot1", Category: "sumo-mini"}}
	assert.Equal(t, MissingConsent, Validate(sub))
}

func TestRegisterPostalCodePattern(t *testing.T) {
	RegisterPostalCodePattern("DE", regexp.MustCompile(`^[0-9]{5}-$`))

	sub := validSubmission()
	sub.Captain.Country = "DE"
	sub.Captain.PostalCode = "12345-"
	assert.Equal(t, CorrectAdding, Validate(sub))

	// Unregistered countries fall back to the default pattern.
	sub.Captain.Country = "FR"
	sub.Captain.PostalCode = "75-001"
	assert.Equal(t, CorrectAdding, Validate(sub))
	sub.Captain.PostalCode = "750-01"
	assert.Equal(t, InvalidCaptain, Validate(sub))
}

func TestOutcomeMessagesAreTotal(t *testing.T) {
	outcomes := []Outcome{
		CorrectAdding, InvalidTeamName, InvalidCaptain,
		InvalidParticipant, InvalidRobot, MissingConsent, DatabaseFail,
	}
	for _, o := range outcomes {
		assert.NotEmpty(t, o.Message(), "outcome %s has no message", o)
		assert.NotEqual(t, "Unknown", o.String())
	}
}
