package models

import (
	"time"

	"gorm.io/datatypes"
)

// TierType tags the three fixed pricing tiers of an offer
type TierType string

const (
	TierBasic    TierType = "basic"
	TierStandard TierType = "standard"
	TierPremium  TierType = "premium"
)

// TierTypes lists all valid tier tags; every offer carries exactly one of each
var TierTypes = []TierType{TierBasic, TierStandard, TierPremium}

type Offer struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"user" gorm:"not null;index"`
	User        User          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	// Derived minimums across the three tiers, recomputed inside every
	// transaction that touches tier data so list filtering and ordering
	// can run in plain SQL.
	MinPrice        float64       `json:"min_price"`
	MinDeliveryTime int           `json:"min_delivery_time"`
	Details         []OfferDetail `json:"details,omitempty" gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OfferDetail is one pricing tier of an offer. Tiers live and die with
// their parent offer and are only mutated through offer updates.
type OfferDetail struct {
	ID               uint                       `json:"id" gorm:"primaryKey"`
	OfferID          uint                       `json:"offer_id" gorm:"not null;index"`
	OfferType        TierType                   `json:"offer_type" gorm:"not null"`
	Title            string                     `json:"title" gorm:"not null"`
	Revisions        int                        `json:"revisions"`
	DeliveryTimeDays int                        `json:"delivery_time_in_days" gorm:"not null"`
	Price            float64                    `json:"price" gorm:"not null"`
	Features         datatypes.JSONSlice[string] `json:"features"`
}
