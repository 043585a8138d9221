package model

import (
	"time"

	"github.com/google/uuid"
)

// ArtworkModel mirrors the 'artworks' table.
type ArtworkModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);index"`
	Price       float64   `gorm:"type:numeric(12,2)"`
	FilePath    string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtworkModel) TableName() string {
	return "artworks"
}
