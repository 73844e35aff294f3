package models

// Participant is one person on a team, captain included.
type Participant struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Year      int    `gorm:"not null;index" json:"year"`
	Size      string `gorm:"size:5;not null" json:"size"` // shirt size
}

func (Participant) TableName() string { return "participant" }

// ParticipantAddress holds contact data. Only team captains get an
// address row during registration.
type ParticipantAddress struct {
	ParticipantID uint   `gorm:"primaryKey;autoIncrement:false" json:"participant_id"`
	Email         string `gorm:"size:50;not null" json:"email"`
	Phone         string `gorm:"size:50;not null" json:"phone"`
	StreetAddress string `gorm:"size:100;not null" json:"street_address"`
	AdminLevel2   string `gorm:"column:admin_level2;size:50;not null" json:"admin_level2"` // city
	PostalCode    string `gorm:"size:6;not null" json:"postal_code"`
	CountryCode   string `gorm:"size:2;not null" json:"country_code"`
}

func (ParticipantAddress) TableName() string { return "participant_address" }
