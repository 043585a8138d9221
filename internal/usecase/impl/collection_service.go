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

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	txManager    repository.TransactionManager
	artworkRepo  repository.ArtworkRepository
	purchaseRepo repository.PurchaseRepository
	wishlistRepo repository.WishlistRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ArtworkRepo  repository.ArtworkRepository
	PurchaseRepo repository.PurchaseRepository
	WishlistRepo repository.WishlistRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		txManager:    params.TxManager,
		artworkRepo:  params.ArtworkRepo,
		purchaseRepo: params.PurchaseRepo,
		wishlistRepo: params.WishlistRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToWishlist saves an artwork to the account's wishlist.
func (srv *collectionService) AddToWishlist(ctx context.Context, userID, artworkID uuid.UUID) error {
	if _, err := srv.artworkRepo.FindByID(ctx, artworkID); err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return domainerrors.ErrArtworkNotFound.WrapMessage("wishlist target missing")
		}

		return errors.Wrap(err, "failed to load artwork for wishlist")
	}

	item := &entity.WishlistItem{UserID: userID, ArtworkID: artworkID}
	if err := srv.wishlistRepo.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrWishlistDuplicate) {
			return domainerrors.ErrWishlistConflict.WrapMessage("artwork already wishlisted")
		}

		return errors.Wrap(err, "failed to add wishlist entry")
	}

	srv.log(ctx).Debug("Wishlist entry added", slog.Any("userID", userID), slog.Any("artworkID", artworkID))

	return nil
}

// RemoveFromWishlist drops an artwork from the account's wishlist. Removing
// an entry that is not present is not an error.
func (srv *collectionService) RemoveFromWishlist(ctx context.Context, userID, artworkID uuid.UUID) error {
	if err := srv.wishlistRepo.Remove(ctx, userID, artworkID); err != nil {
		return errors.Wrap(err, "failed to remove wishlist entry")
	}

	srv.log(ctx).Debug("Wishlist entry removed", slog.Any("userID", userID), slog.Any("artworkID", artworkID))

	return nil
}

// ListWishlist returns the artworks on the account's wishlist, newest first.
// Entries whose artwork has been delisted in the meantime are skipped.
func (srv *collectionService) ListWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.Artwork, error) {
	items, err := srv.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist entries")
	}

	artworks := make([]*entity.Artwork, 0, len(items))
	for _, item := range items {
		artwork, err := srv.artworkRepo.FindByID(ctx, item.ArtworkID)
		if errors.Is(err, repository.ErrArtworkNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load wishlisted artwork")
		}

		artworks = append(artworks, artwork)
	}

	return artworks, nil
}

// PurchaseArtwork records a purchase at the artwork's current price and
// publishes a purchase event for async processing. Publishing is best-effort;
// a committed purchase is never rolled back because the broker was down.
func (srv *collectionService) PurchaseArtwork(ctx context.Context, buyerID, artworkID uuid.UUID) (*entity.Purchase, error) {
	var purchase *entity.Purchase
	var artwork *entity.Artwork
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		artwork, err = repoFactory.ArtworkRepo().FindByID(ctx, artworkID)
		if err != nil {
			if errors.Is(err, repository.ErrArtworkNotFound) {
				return domainerrors.ErrArtworkNotFound.WrapMessage("purchase target missing")
			}

			return errors.Wrap(err, "failed to load artwork for purchase")
		}

		purchase = &entity.Purchase{
			UserID:    buyerID,
			ArtworkID: artwork.ID,
			Price:     artwork.Price,
		}

		return errors.Wrap(repoFactory.PurchaseRepo().Create(ctx, purchase), "failed to record purchase")
	})
	if err != nil {
		srv.log(ctx).Warn("Purchase failed", slog.Any("artworkID", artworkID), slog.Any("error", err))

		return nil, err
	}

	event := &service.PurchaseEvent{
		PurchaseID: purchase.ID.String(),
		ArtworkID:  artwork.ID.String(),
		Title:      artwork.Title,
		BuyerID:    buyerID.String(),
		SellerID:   artwork.OwnerID.String(),
		Price:      purchase.Price,
	}
	if err := srv.publisher.PublishPurchaseEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish purchase event",
			slog.Any("purchaseID", purchase.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Debug("Purchase recorded", slog.Any("purchaseID", purchase.ID), slog.Any("buyerID", buyerID))

	return purchase, nil
}

// ListPurchases returns the account's purchases paired with their artworks,
// newest first. Purchases of delisted artworks keep their row but carry a nil
// artwork.
func (srv *collectionService) ListPurchases(ctx context.Context, userID uuid.UUID) ([]*usecase.PurchaseRecord, error) {
	purchases, err := srv.purchaseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	records := make([]*usecase.PurchaseRecord, 0, len(purchases))
	for _, purchase := range purchases {
		artwork, err := srv.artworkRepo.FindByID(ctx, purchase.ArtworkID)
		if err != nil && !errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, errors.Wrap(err, "failed to load purchased artwork")
		}

		records = append(records, &usecase.PurchaseRecord{
			Purchase: purchase,
			Artwork:  artwork,
		})
	}

	return records, nil
}
