package models

import "time"

// Scoring methods understood by the results pipeline.
const (
	ScoringTournamentBracket = "tournament_bracket"
	ScoringVotes             = "votes"
	ScoringTimeShortest      = "time_shortest"
	ScoringNotAvailable      = "not-available"
)

// Competition is a reference row for one competition category.
// Robots reference it by Name.
type Competition struct {
	Name          string `gorm:"primaryKey;size:100" json:"name"`
	ScoringMethod string `gorm:"size:30;not null;default:'not-available'" json:"scoring_method"`
	Color         string `gorm:"size:20" json:"color"`
	DisplayName   string `gorm:"size:100" json:"display_name"`
	Active        bool   `gorm:"not null;default:true" json:"active"`
}

func (Competition) TableName() string { return "competition" }

// Country is a reference row used by the registration form and the
// postal-code validation table.
type Country struct {
	Code string `gorm:"primaryKey;size:2" json:"code"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (Country) TableName() string { return "country" }

// Schedule is one timetable entry for the event.
type Schedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Competition string    `gorm:"size:100;index" json:"competition"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Type        string    `gorm:"size:50" json:"type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

func (Schedule) TableName() string { return "schedule" }
