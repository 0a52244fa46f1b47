package models

import "time"

// Profile extends a User with marketplace-specific fields.
// Exactly one profile exists per user; it is created in the same
// transaction as the user and never through its own endpoint.
type Profile struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	UserID       uint      `json:"user" gorm:"uniqueIndex;not null"`
	User         User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         UserRole  `json:"type" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
