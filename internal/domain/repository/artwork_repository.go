// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"artmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrArtworkNotFound is returned when no artwork matches a lookup.
var ErrArtworkNotFound = errors.New("artwork not found")

// ArtworkRepository defines the standard operations for artwork persistence.
type ArtworkRepository interface {
	// FindByID retrieves a single artwork by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artwork, error)

	// FindAll retrieves every listed artwork.
	FindAll(ctx context.Context) ([]*entity.Artwork, error)

	// FindByCategory retrieves all artworks in a browsing category.
	FindByCategory(ctx context.Context, category string) ([]*entity.Artwork, error)

	// FindByOwner retrieves all artworks listed by an account.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Artwork, error)

	// Create persists a new artwork listing.
	Create(ctx context.Context, artwork *entity.Artwork) error

	// Update modifies an existing artwork listing.
	Update(ctx context.Context, artwork *entity.Artwork) error

	// Delete removes an artwork listing.
	Delete(ctx context.Context, id uuid.UUID) error
}
