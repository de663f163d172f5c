package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artwork is a single-unit catalog item owned by exactly one artist.
// IsAvailable starts true and is flipped to false by the one successful
// purchase; this service never flips it back.
type Artwork struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Category    string         `gorm:"size:100;not null;index" json:"category"`
	ImageURL    string         `gorm:"size:500;not null" json:"image_url"`
	ArtistID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"artist_id"`
	IsAvailable bool           `gorm:"not null;default:true" json:"is_available"`
	IsFeatured  bool           `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
