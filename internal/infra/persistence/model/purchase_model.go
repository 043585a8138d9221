package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the 'purchases' table.
type PurchaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ArtworkID uuid.UUID `gorm:"type:uuid;index;not null"`
	Price     float64   `gorm:"type:numeric(12,2)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// WishlistModel mirrors the 'wishlist' table. The (UserID, ArtworkID) pair is
// unique so the same artwork cannot be saved twice.
type WishlistModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ArtworkID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlist"
}
