package models

import "gorm.io/gorm"

// CreateDefaultCompetitions seeds the competition reference table during
// migration. Existing rows are left untouched.
func CreateDefaultCompetitions(db *gorm.DB) error {
	defaultCompetitions := []Competition{
		{Name: "sumo-standard", DisplayName: "Standard Sumo", ScoringMethod: ScoringTournamentBracket, Color: "#e74c3c"},
		{Name: "sumo-mini", DisplayName: "Mini Sumo", ScoringMethod: ScoringTournamentBracket, Color: "#c0392b"},
		{Name: "sumo-micro", DisplayName: "Micro Sumo", ScoringMethod: ScoringTournamentBracket, Color: "#9b59b6"},
		{Name: "sumo-lego", DisplayName: "LEGO Sumo", ScoringMethod: ScoringTournamentBracket, Color: "#f1c40f"},
		{Name: "smashbots-mini", DisplayName: "Mini Smash Bots", ScoringMethod: ScoringTournamentBracket, Color: "#e67e22"},
		{Name: "linefollower-standard", DisplayName: "Line Follower Standard", ScoringMethod: ScoringTimeShortest, Color: "#2980b9"},
		{Name: "linefollower-enhanced", DisplayName: "Line Follower Enhanced", ScoringMethod: ScoringTimeShortest, Color: "#3498db"},
		{Name: "linefollower-lego", DisplayName: "LEGO Line Follower", ScoringMethod: ScoringTimeShortest, Color: "#1abc9c"},
		{Name: "micromouse", DisplayName: "Micromouse", ScoringMethod: ScoringTimeShortest, Color: "#16a085"},
		{Name: "robosprint", DisplayName: "Robosprint", ScoringMethod: ScoringTimeShortest, Color: "#27ae60"},
		{Name: "freestyle", DisplayName: "Freestyle", ScoringMethod: ScoringVotes, Color: "#8e44ad"},
		{Name: "events", DisplayName: "Events", ScoringMethod: ScoringNotAvailable, Color: "#7f8c8d"},
	}
	for _, competition := range defaultCompetitions {
		if err := db.FirstOrCreate(&competition, "name = ?", competition.Name).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateDefaultCountries seeds the countries offered by the registration
// form. The list is not exhaustive; organizers add rows as needed.
func CreateDefaultCountries(db *gorm.DB) error {
	defaultCountries := []Country{
		{Code: "PL", Name: "Poland"},
		{Code: "CZ", Name: "Czechia"},
		{Code: "SK", Name: "Slovakia"},
		{Code: "DE", Name: "Germany"},
		{Code: "LT", Name: "Lithuania"},
		{Code: "UA", Name: "Ukraine"},
		{Code: "HU", Name: "Hungary"},
		{Code: "AT", Name: "Austria"},
	}
	for _, country := range defaultCountries {
		if err := db.FirstOrCreate(&country, "code = ?", country.Code).Error; err != nil {
			return err
		}
	}
	return nil
}
