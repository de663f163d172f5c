package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. Transitions are admin-controlled and deliberately
// permissive: any named status may be set from any current status.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusSold      = "Sold"
)

// ValidOrderStatus reports whether s is one of the three named statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusSold:
		return true
	default:
		return false
	}
}

// Order records one successful purchase. TotalAmount is the artwork price
// at reservation time and is never recomputed. Orders are never deleted.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"buyer_id"`
	ArtworkID   uuid.UUID `gorm:"type:uuid;not null;index" json:"artwork_id"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	Status      string    `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Buyer   *User    `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Artwork *Artwork `gorm:"foreignKey:ArtworkID" json:"artwork,omitempty"`
}
