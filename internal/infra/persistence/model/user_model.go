package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Username and Email carry unique constraints; the database, not the
// application pre-check, is the authority for uniqueness.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	AccountType  string    `gorm:"type:varchar(16);not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Address      string    `gorm:"type:varchar(255)"`
	Telephone    string    `gorm:"type:varchar(32)"`
	ProfileImage string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	Artworks  []ArtworkModel  `gorm:"foreignKey:OwnerID"`
	Purchases []PurchaseModel `gorm:"foreignKey:UserID"`
	Wishlist  []WishlistModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
