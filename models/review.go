package models

import "time"

// Review is written by a customer about a business user. The composite
// unique index enforces at most one review per (business, reviewer) pair.
type Review struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	BusinessUserID uint      `json:"business_user" gorm:"not null;uniqueIndex:idx_review_pair"`
	BusinessUser   User      `json:"-" gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
	ReviewerID     uint      `json:"reviewer" gorm:"not null;uniqueIndex:idx_review_pair"`
	Reviewer       User      `json:"-" gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
	Rating         int       `json:"rating" gorm:"not null"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
