package impl

import (
	"context"
	"log/slog"

	deliverycontext "artmarket/internal/delivery/context"
	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	"artmarket/internal/domain/repository"
	"artmarket/internal/domain/service"
	"artmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// artworkService implements the ArtworkUsecase interface.
type artworkService struct {
	txManager   repository.TransactionManager
	artworkRepo repository.ArtworkRepository
	fileStore   service.FileStore
	logger      *slog.Logger
}

// ArtworkServiceParams holds dependencies for ArtworkService, injected by Fx.
type ArtworkServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ArtworkRepo repository.ArtworkRepository
	FileStore   service.FileStore
	Logger      *slog.Logger
}

// NewArtworkService is the constructor for artworkService.
func NewArtworkService(params ArtworkServiceParams) usecase.ArtworkUsecase {
	return &artworkService{
		txManager:   params.TxManager,
		artworkRepo: params.ArtworkRepo,
		fileStore:   params.FileStore,
		logger:      params.Logger,
	}
}

func (srv *artworkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListArtworks returns every listed artwork, newest first.
func (srv *artworkService) ListArtworks(ctx context.Context) ([]*entity.Artwork, error) {
	artworks, err := srv.artworkRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artworks")
	}

	return artworks, nil
}

// ListArtworksByCategory returns the artworks in one browsing category.
func (srv *artworkService) ListArtworksByCategory(ctx context.Context, category string) ([]*entity.Artwork, error) {
	artworks, err := srv.artworkRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artworks by category")
	}

	return artworks, nil
}

// ListArtworksByOwner returns the artworks listed by one account.
func (srv *artworkService) ListArtworksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Artwork, error) {
	artworks, err := srv.artworkRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artworks by owner")
	}

	return artworks, nil
}

// GetArtwork returns a single artwork by ID.
func (srv *artworkService) GetArtwork(ctx context.Context, id uuid.UUID) (*entity.Artwork, error) {
	artwork, err := srv.artworkRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, domainerrors.ErrArtworkNotFound.WrapMessage("artwork lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load artwork")
	}

	return artwork, nil
}

// CreateArtwork stores the uploaded file and lists the artwork under the
// given owner. The file upload is mandatory; a listing without its file
// would not be purchasable.
func (srv *artworkService) CreateArtwork(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateArtworkInput) (*entity.Artwork, error) {
	if input.File == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("artwork file is required")
	}

	filePath, err := srv.fileStore.Save(ctx, input.File.Filename, input.File.ContentType, input.File.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store artwork file", slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WrapMessage("failed to store artwork file")
	}

	artwork := &entity.Artwork{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		FilePath:    filePath,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.ArtworkRepo().Create(ctx, artwork), "failed to create artwork")
	})
	if err != nil {
		// The listing was not persisted, drop the orphaned upload.
		if removeErr := srv.fileStore.Remove(ctx, filePath); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned artwork file", slog.Any("error", removeErr))
		}
		srv.log(ctx).Warn("Artwork creation failed", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Artwork created", slog.Any("artworkID", artwork.ID), slog.Any("ownerID", ownerID))

	return artwork, nil
}

// UpdateArtwork modifies a listing. Only the owner may update it; nil input
// fields are left unchanged.
func (srv *artworkService) UpdateArtwork(ctx context.Context, requesterID, artworkID uuid.UUID, input *usecase.UpdateArtworkInput) (*entity.Artwork, error) {
	var updatedArtwork *entity.Artwork
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		artworkRepo := repoFactory.ArtworkRepo()

		artwork, err := artworkRepo.FindByID(ctx, artworkID)
		if err != nil {
			if errors.Is(err, repository.ErrArtworkNotFound) {
				return domainerrors.ErrArtworkNotFound.WrapMessage("artwork update target missing")
			}

			return errors.Wrap(err, "failed to load artwork for update")
		}

		if artwork.OwnerID != requesterID {
			return domainerrors.ErrForbidden.WrapMessage("artwork update by non-owner")
		}

		if input.Title != nil {
			artwork.Title = *input.Title
		}
		if input.Description != nil {
			artwork.Description = *input.Description
		}
		if input.Category != nil {
			artwork.Category = *input.Category
		}
		if input.Price != nil {
			artwork.Price = *input.Price
		}

		if err := artworkRepo.Update(ctx, artwork); err != nil {
			return errors.Wrap(err, "failed to update artwork")
		}

		updatedArtwork = artwork

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Artwork update failed", slog.Any("artworkID", artworkID), slog.Any("error", err))

		return nil, err
	}

	return updatedArtwork, nil
}

// DeleteArtwork removes a listing. Only the owner may delete it. The stored
// file is removed best-effort after the row is gone.
func (srv *artworkService) DeleteArtwork(ctx context.Context, requesterID, artworkID uuid.UUID) error {
	var filePath string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		artworkRepo := repoFactory.ArtworkRepo()

		artwork, err := artworkRepo.FindByID(ctx, artworkID)
		if err != nil {
			if errors.Is(err, repository.ErrArtworkNotFound) {
				return domainerrors.ErrArtworkNotFound.WrapMessage("artwork delete target missing")
			}

			return errors.Wrap(err, "failed to load artwork for delete")
		}

		if artwork.OwnerID != requesterID {
			return domainerrors.ErrForbidden.WrapMessage("artwork delete by non-owner")
		}

		filePath = artwork.FilePath

		return errors.Wrap(artworkRepo.Delete(ctx, artworkID), "failed to delete artwork")
	})
	if err != nil {
		srv.log(ctx).Warn("Artwork delete failed", slog.Any("artworkID", artworkID), slog.Any("error", err))

		return err
	}

	if filePath != "" {
		if removeErr := srv.fileStore.Remove(ctx, filePath); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove deleted artwork file", slog.Any("error", removeErr))
		}
	}

	srv.log(ctx).Debug("Artwork deleted", slog.Any("artworkID", artworkID))

	return nil
}
