// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"artmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateArtworkInput defines the data required to list a new artwork.
type CreateArtworkInput struct {
	Title       string
	Description string
	Category    string
	Price       float64
	File        *FileUpload
}

// UpdateArtworkInput defines the data required to update an artwork listing.
// Nil fields are left unchanged.
type UpdateArtworkInput struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ArtworkUsecase defines the interface for artwork-related business operations.
type ArtworkUsecase interface {
	ListArtworks(ctx context.Context) ([]*entity.Artwork, error)
	ListArtworksByCategory(ctx context.Context, category string) ([]*entity.Artwork, error)
	ListArtworksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Artwork, error)
	GetArtwork(ctx context.Context, id uuid.UUID) (*entity.Artwork, error)
	CreateArtwork(ctx context.Context, ownerID uuid.UUID, input *CreateArtworkInput) (*entity.Artwork, error)
	UpdateArtwork(ctx context.Context, requesterID, artworkID uuid.UUID, input *UpdateArtworkInput) (*entity.Artwork, error)
	DeleteArtwork(ctx context.Context, requesterID, artworkID uuid.UUID) error
}
