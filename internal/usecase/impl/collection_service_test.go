package impl

import (
	"context"
	"testing"

	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	"artmarket/internal/domain/repository"
	"artmarket/internal/domain/service"
	mockRepo "artmarket/internal/mocks/repository"
	mockSvc "artmarket/internal/mocks/service"
	"artmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// collectionServiceFixtures holds all test dependencies for collection service tests.
type collectionServiceFixtures struct {
	service      usecase.CollectionUsecase
	txManager    *mockRepo.MockTransactionManager
	artworkRepo  *mockRepo.MockArtworkRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	wishlistRepo *mockRepo.MockWishlistRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestCollectionService(t *testing.T) collectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	artworkRepo := mockRepo.NewMockArtworkRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewCollectionService(CollectionServiceParams{
		TxManager:    txManager,
		ArtworkRepo:  artworkRepo,
		PurchaseRepo: purchaseRepo,
		WishlistRepo: wishlistRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return collectionServiceFixtures{
		service:      service,
		txManager:    txManager,
		artworkRepo:  artworkRepo,
		purchaseRepo: purchaseRepo,
		wishlistRepo: wishlistRepo,
		publisher:    publisher,
	}
}

// expectPurchaseTransaction makes the transaction manager run the callback
// against a factory backed by the given transactional repositories.
func expectPurchaseTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txArtworkRepo *mockRepo.MockArtworkRepository, txPurchaseRepo *mockRepo.MockPurchaseRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().ArtworkRepo().Return(txArtworkRepo)
			if txPurchaseRepo != nil {
				factory.EXPECT().PurchaseRepo().Return(txPurchaseRepo)
			}

			return fn(factory)
		})
}

func TestCollectionService_PurchaseArtwork_Success(t *testing.T) {
	fixtures := createTestCollectionService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	artworkID := uuid.New()
	purchaseID := uuid.New()

	artwork := &entity.Artwork{
		ID:      artworkID,
		OwnerID: sellerID,
		Title:   "Sunset",
		Price:   120.5,
	}

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().FindByID(ctx, artworkID).Return(artwork, nil)
	txPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	txPurchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Run(func(_ context.Context, purchase *entity.Purchase) {
			purchase.ID = purchaseID
		}).
		Return(nil)
	expectPurchaseTransaction(t, fixtures.txManager, txArtworkRepo, txPurchaseRepo)

	fixtures.publisher.EXPECT().
		PublishPurchaseEvent(ctx, mock.AnythingOfType("*service.PurchaseEvent")).
		Run(func(_ context.Context, event *service.PurchaseEvent) {
			assert.Equal(t, purchaseID.String(), event.PurchaseID)
			assert.Equal(t, sellerID.String(), event.SellerID)
			assert.Equal(t, 120.5, event.Price)
		}).
		Return(nil)

	purchase, err := fixtures.service.PurchaseArtwork(ctx, buyerID, artworkID)

	require.NoError(t, err)
	assert.Equal(t, purchaseID, purchase.ID)
	assert.Equal(t, buyerID, purchase.UserID)
	// The purchase snapshots the price at purchase time.
	assert.Equal(t, 120.5, purchase.Price)
}

func TestCollectionService_PurchaseArtwork_PublishFailureDoesNotFail(t *testing.T) {
	fixtures := createTestCollectionService(t)

	ctx := context.Background()
	artworkID := uuid.New()

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(&entity.Artwork{ID: artworkID, OwnerID: uuid.New(), Price: 50}, nil)
	txPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	txPurchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Return(nil)
	expectPurchaseTransaction(t, fixtures.txManager, txArtworkRepo, txPurchaseRepo)

	fixtures.publisher.EXPECT().
		PublishPurchaseEvent(ctx, mock.AnythingOfType("*service.PurchaseEvent")).
		Return(errors.New("broker down"))

	purchase, err := fixtures.service.PurchaseArtwork(ctx, uuid.New(), artworkID)

	require.NoError(t, err)
	assert.NotNil(t, purchase)
}

func TestCollectionService_PurchaseArtwork_NotFound(t *testing.T) {
	fixtures := createTestCollectionService(t)

	ctx := context.Background()
	artworkID := uuid.New()

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(nil, repository.ErrArtworkNotFound)
	expectPurchaseTransaction(t, fixtures.txManager, txArtworkRepo, nil)

	purchase, err := fixtures.service.PurchaseArtwork(ctx, uuid.New(), artworkID)

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrArtworkNotFound)
}

func TestCollectionService_AddToWishlist_Success(t *testing.T) {
	fixtures := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	artworkID := uuid.New()

	fixtures.artworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(&entity.Artwork{ID: artworkID}, nil)
	fixtures.wishlistRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.WishlistItem")).
		Return(nil)

	require.NoError(t, fixtures.service.AddToWishlist(ctx, userID, artworkID))
}

func TestCollectionService_AddToWishlist_Duplicate(t *testing.T) {
	fixtures := createTestCollectionService(t)

	ctx := context.Background()
	artworkID := uuid.New()

	fixtures.artworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(&entity.Artwork{ID: artworkID}, nil)
	fixtures.wishlistRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.WishlistItem")).
		Return(repository.ErrWishlistDuplicate)

	err := fixtures.service.AddToWishlist(ctx, uuid.New(), artworkID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistConflict)
}

func TestCollectionService_ListWishlist_SkipsDelistedArtworks(t *testing.T) {
	fixtures := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	liveID := uuid.New()
	delistedID := uuid.New()

	fixtures.wishlistRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.WishlistItem{
			{UserID: userID, ArtworkID: liveID},
			{UserID: userID, ArtworkID: delistedID},
		}, nil)
	fixtures.artworkRepo.EXPECT().
		FindByID(ctx, liveID).
		Return(&entity.Artwork{ID: liveID, Title: "Sunset"}, nil)
	fixtures.artworkRepo.EXPECT().
		FindByID(ctx, delistedID).
		Return(nil, repository.ErrArtworkNotFound)

	artworks, err := fixtures.service.ListWishlist(ctx, userID)

	require.NoError(t, err)
	require.Len(t, artworks, 1)
	assert.Equal(t, liveID, artworks[0].ID)
}

func TestCollectionService_ListPurchases(t *testing.T) {
	fixtures := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	artworkID := uuid.New()
	delistedID := uuid.New()

	fixtures.purchaseRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Purchase{
			{ID: uuid.New(), UserID: userID, ArtworkID: artworkID, Price: 120.5},
			{ID: uuid.New(), UserID: userID, ArtworkID: delistedID, Price: 80},
		}, nil)
	fixtures.artworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(&entity.Artwork{ID: artworkID, Title: "Sunset"}, nil)
	fixtures.artworkRepo.EXPECT().
		FindByID(ctx, delistedID).
		Return(nil, repository.ErrArtworkNotFound)

	records, err := fixtures.service.ListPurchases(ctx, userID)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NotNil(t, records[0].Artwork)
	// A delisted artwork keeps its purchase row without artwork details.
	assert.Nil(t, records[1].Artwork)
}
