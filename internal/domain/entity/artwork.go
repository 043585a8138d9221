// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artwork represents a single listed piece in the marketplace.
type Artwork struct {
	ID          uuid.UUID // The unique identifier for the artwork.
	OwnerID     uuid.UUID // The seller account that listed this artwork.
	Title       string    // Display title.
	Description string    // Free-form description.
	Category    string    // Browsing category, e.g. "painting", "sculpture".
	Price       float64   // Listing price.
	FilePath    string    // Path of the uploaded artwork file in the blob store.
	CreatedAt   time.Time // Timestamp of when this artwork was listed.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
