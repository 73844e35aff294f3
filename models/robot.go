package models

// Robot is one machine entered into a competition category by a team.
type Robot struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	RobotNo     int    `gorm:"not null" json:"robot_no"` // ordinal within the team's submission
	TeamID      uint   `gorm:"not null;index" json:"team_id"`
	Competition string `gorm:"size:100;not null" json:"competition"` // competition key, e.g. "sumo-mini"
	Year        int    `gorm:"not null;index" json:"year"`
	Status      string `gorm:"size:20;not null;default:'registered'" json:"status"`
}

func (Robot) TableName() string { return "robot" }
