package models

// Lifecycle statuses shared by team, membership and robot rows. New rows
// always start as StatusRegistered; later transitions happen through the
// admin PATCH endpoints.
const (
	StatusRegistered = "registered"
	StatusConfirmed  = "confirmed"
	StatusResigned   = "resigned"
)

// Membership roles. Exactly one leader row exists per team.
const (
	RoleLeader      = "leader"
	RoleParticipant = "participant"
)

// Team is one registered team for a given event year.
type Team struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:50;not null" json:"name"`
	Year   int    `gorm:"not null;index" json:"year"`
	Status string `gorm:"size:20;not null;default:'registered'" json:"status"`

	// Relations
	Members []TeamParticipant `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	Robots  []Robot           `gorm:"foreignKey:TeamID" json:"robots,omitempty"`
}

func (Team) TableName() string { return "team" }

// TeamParticipant links a participant to a team with a role.
type TeamParticipant struct {
	TeamID         uint   `gorm:"primaryKey;autoIncrement:false" json:"team_id"`
	ParticipantID  uint   `gorm:"primaryKey;autoIncrement:false" json:"participant_id"`
	Role           string `gorm:"size:20;not null;default:'participant'" json:"role"`
	Status         string `gorm:"size:20;not null;default:'registered'" json:"status"`
	ReceivedTshirt bool   `gorm:"not null;default:false" json:"received_tshirt"`

	// Relations
	Participant Participant `gorm:"foreignKey:ParticipantID" json:"-"`
}

func (TeamParticipant) TableName() string { return "team_participant" }
