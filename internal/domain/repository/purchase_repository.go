// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"artmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWishlistDuplicate is returned when an artwork is already on the user's wishlist.
var ErrWishlistDuplicate = errors.New("artwork already in wishlist")

// PurchaseRepository defines the operations for purchase records.
type PurchaseRepository interface {
	// Create persists a new purchase record.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByUser retrieves all purchases made by an account.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)
}

// WishlistRepository defines the operations for wishlist entries.
type WishlistRepository interface {
	// Add saves an artwork to a user's wishlist. Returns ErrWishlistDuplicate
	// when the (user, artwork) pair already exists.
	Add(ctx context.Context, item *entity.WishlistItem) error

	// Remove deletes an artwork from a user's wishlist.
	Remove(ctx context.Context, userID, artworkID uuid.UUID) error

	// FindByUser retrieves all wishlist entries of an account.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)
}
