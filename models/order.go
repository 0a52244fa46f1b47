package models

import (
	"time"

	"gorm.io/datatypes"
)

// OrderStatus represents the lifecycle states of an order
type OrderStatus string

const (
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Order is created by a customer from one offer tier. The tier's fields
// are copied in at creation time; later edits to the source offer never
// touch an existing order.
type Order struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	CustomerUserID uint        `json:"customer_user" gorm:"not null;index"`
	CustomerUser   User        `json:"-" gorm:"foreignKey:CustomerUserID;constraint:OnDelete:CASCADE"`
	BusinessUserID uint        `json:"business_user" gorm:"not null;index"`
	BusinessUser   User        `json:"-" gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
	OfferDetailID  uint        `json:"offer_detail_id"` // source tier, for traceability only
	Status         OrderStatus `json:"status" gorm:"not null;default:'in_progress'"`

	// Snapshot of the chosen tier, frozen at creation time
	Title            string                      `json:"title" gorm:"not null"`
	Revisions        int                         `json:"revisions"`
	DeliveryTimeDays int                         `json:"delivery_time_in_days"`
	Price            float64                     `json:"price"`
	Features         datatypes.JSONSlice[string] `json:"features"`
	OfferType        TierType                    `json:"offer_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
