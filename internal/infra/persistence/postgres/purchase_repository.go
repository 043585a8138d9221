// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"artmarket/internal/domain/entity"
	"artmarket/internal/domain/repository"
	"artmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the domain.PurchaseRepository interface using GORM.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create persists a new purchase record.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := &model.PurchaseModel{
		ID:        purchase.ID,
		UserID:    purchase.UserID,
		ArtworkID: purchase.ArtworkID,
		Price:     purchase.Price,
	}

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid purchase reference")
		}

		return errors.Wrap(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt

	return nil
}

// FindByUser retrieves all purchases made by an account, newest first.
func (repo *purchaseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	var models []model.PurchaseModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	purchases := make([]*entity.Purchase, 0, len(models))
	for i := range models {
		purchases = append(purchases, &entity.Purchase{
			ID:        models[i].ID,
			UserID:    models[i].UserID,
			ArtworkID: models[i].ArtworkID,
			Price:     models[i].Price,
			CreatedAt: models[i].CreatedAt,
		})
	}

	return purchases, nil
}

// wishlistRepository implements the domain.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Add saves an artwork to a user's wishlist. The composite primary key makes
// a second save of the same artwork a uniqueness conflict.
func (repo *wishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistModel{
		UserID:    item.UserID,
		ArtworkID: item.ArtworkID,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrWishlistDuplicate
		}

		return errors.Wrap(err, "failed to add wishlist entry")
	}

	item.CreatedAt = itemM.CreatedAt

	return nil
}

// Remove deletes an artwork from a user's wishlist.
func (repo *wishlistRepository) Remove(ctx context.Context, userID, artworkID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Delete(&model.WishlistModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to remove wishlist entry")
	}

	return nil
}

// FindByUser retrieves all wishlist entries of an account, newest first.
func (repo *wishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var models []model.WishlistModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist entries")
	}

	items := make([]*entity.WishlistItem, 0, len(models))
	for i := range models {
		items = append(items, &entity.WishlistItem{
			UserID:    models[i].UserID,
			ArtworkID: models[i].ArtworkID,
			CreatedAt: models[i].CreatedAt,
		})
	}

	return items, nil
}
