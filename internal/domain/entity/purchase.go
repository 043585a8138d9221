// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records that a buyer bought an artwork.
type Purchase struct {
	ID        uuid.UUID // The unique identifier for this purchase record.
	UserID    uuid.UUID // The buying account.
	ArtworkID uuid.UUID // The purchased artwork.
	Price     float64   // Price at the time of purchase.
	CreatedAt time.Time // Timestamp of the purchase.
}

// WishlistItem marks an artwork a user has saved for later.
// The (UserID, ArtworkID) pair is unique at the storage layer.
type WishlistItem struct {
	UserID    uuid.UUID // The account that saved the artwork.
	ArtworkID uuid.UUID // The saved artwork.
	CreatedAt time.Time // Timestamp of when the artwork was saved.
}
