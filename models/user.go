package models

import "gorm.io/gorm"

// User is an organizer account. Only organizers authenticate; registrants
// submit teams without an account.
type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
}
