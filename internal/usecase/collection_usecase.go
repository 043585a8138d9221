// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"artmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRecord pairs a purchase row with the artwork it was made against.
type PurchaseRecord struct {
	Purchase *entity.Purchase
	Artwork  *entity.Artwork
}

// CollectionUsecase defines the interface for wishlist and purchase operations.
type CollectionUsecase interface {
	AddToWishlist(ctx context.Context, userID, artworkID uuid.UUID) error
	RemoveFromWishlist(ctx context.Context, userID, artworkID uuid.UUID) error
	ListWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.Artwork, error)
	PurchaseArtwork(ctx context.Context, buyerID, artworkID uuid.UUID) (*entity.Purchase, error)
	ListPurchases(ctx context.Context, userID uuid.UUID) ([]*PurchaseRecord, error)
}
