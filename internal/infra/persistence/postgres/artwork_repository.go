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

// artworkRepository implements the domain.ArtworkRepository interface using GORM.
type artworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository is the constructor for artworkRepository.
func NewArtworkRepository(db *gorm.DB) repository.ArtworkRepository {
	return &artworkRepository{db: db}
}

// FindByID retrieves a single artwork by its unique ID.
func (repo *artworkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artwork, error) {
	var artM model.ArtworkModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&artM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtworkNotFound
		}

		return nil, errors.Wrap(err, "failed to find artwork by id")
	}

	return toArtworkDomain(&artM), nil
}

// FindAll retrieves every listed artwork, newest first.
func (repo *artworkRepository) FindAll(ctx context.Context) ([]*entity.Artwork, error) {
	var models []model.ArtworkModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artworks")
	}

	return toArtworkDomainList(models), nil
}

// FindByCategory retrieves all artworks in a browsing category, newest first.
func (repo *artworkRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Artwork, error) {
	var models []model.ArtworkModel
	err := repo.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artworks by category")
	}

	return toArtworkDomainList(models), nil
}

// FindByOwner retrieves all artworks listed by an account, newest first.
func (repo *artworkRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Artwork, error) {
	var models []model.ArtworkModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artworks by owner")
	}

	return toArtworkDomainList(models), nil
}

// Create persists a new artwork listing.
func (repo *artworkRepository) Create(ctx context.Context, artwork *entity.Artwork) error {
	artM := fromArtworkDomain(artwork)

	if err := repo.db.WithContext(ctx).Create(artM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid artwork owner reference")
		}

		return errors.Wrap(err, "failed to create artwork")
	}

	artwork.ID = artM.ID
	artwork.CreatedAt = artM.CreatedAt
	artwork.UpdatedAt = artM.UpdatedAt

	return nil
}

// Update modifies an existing artwork listing.
func (repo *artworkRepository) Update(ctx context.Context, artwork *entity.Artwork) error {
	artM := fromArtworkDomain(artwork)

	if err := repo.db.WithContext(ctx).Save(artM).Error; err != nil {
		return errors.Wrap(err, "failed to update artwork")
	}

	artwork.UpdatedAt = artM.UpdatedAt

	return nil
}

// Delete removes an artwork listing.
func (repo *artworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ArtworkModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete artwork")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtworkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toArtworkDomain converts a GORM ArtworkModel to a domain Artwork entity.
func toArtworkDomain(data *model.ArtworkModel) *entity.Artwork {
	if data == nil {
		return nil
	}

	return &entity.Artwork{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		FilePath:    data.FilePath,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toArtworkDomainList(models []model.ArtworkModel) []*entity.Artwork {
	artworks := make([]*entity.Artwork, 0, len(models))
	for i := range models {
		artworks = append(artworks, toArtworkDomain(&models[i]))
	}

	return artworks
}

// fromArtworkDomain converts a domain Artwork entity to a GORM ArtworkModel.
func fromArtworkDomain(data *entity.Artwork) *model.ArtworkModel {
	if data == nil {
		return nil
	}

	return &model.ArtworkModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		FilePath:    data.FilePath,
	}
}
