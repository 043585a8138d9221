package impl

import (
	"context"
	"strings"
	"testing"

	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	"artmarket/internal/domain/repository"
	mockRepo "artmarket/internal/mocks/repository"
	mockSvc "artmarket/internal/mocks/service"
	"artmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// artworkServiceFixtures holds all test dependencies for artwork service tests.
type artworkServiceFixtures struct {
	service     usecase.ArtworkUsecase
	txManager   *mockRepo.MockTransactionManager
	artworkRepo *mockRepo.MockArtworkRepository
	fileStore   *mockSvc.MockFileStore
}

func createTestArtworkService(t *testing.T) artworkServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	artworkRepo := mockRepo.NewMockArtworkRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)

	service := NewArtworkService(ArtworkServiceParams{
		TxManager:   txManager,
		ArtworkRepo: artworkRepo,
		FileStore:   fileStore,
		Logger:      newDiscardLogger(),
	})

	return artworkServiceFixtures{
		service:     service,
		txManager:   txManager,
		artworkRepo: artworkRepo,
		fileStore:   fileStore,
	}
}

// expectArtworkTransaction makes the transaction manager run the callback
// against a factory backed by the given transactional artwork repository.
func expectArtworkTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txArtworkRepo *mockRepo.MockArtworkRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().ArtworkRepo().Return(txArtworkRepo)

			return fn(factory)
		})
}

func TestArtworkService_CreateArtwork_Success(t *testing.T) {
	fixtures := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	newID := uuid.New()
	input := &usecase.CreateArtworkInput{
		Title:       "Sunset",
		Description: "Oil on canvas",
		Category:    "painting",
		Price:       120.5,
		File: &usecase.FileUpload{
			Filename:    "sunset.png",
			ContentType: "image/png",
			Content:     strings.NewReader("png-bytes"),
		},
	}

	fixtures.fileStore.EXPECT().
		Save(ctx, "sunset.png", "image/png", mock.Anything).
		Return("/uploads/1-sunset.png", nil)

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Artwork")).
		Run(func(_ context.Context, artwork *entity.Artwork) {
			artwork.ID = newID
		}).
		Return(nil)
	expectArtworkTransaction(t, fixtures.txManager, txArtworkRepo)

	artwork, err := fixtures.service.CreateArtwork(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, newID, artwork.ID)
	assert.Equal(t, ownerID, artwork.OwnerID)
	assert.Equal(t, "/uploads/1-sunset.png", artwork.FilePath)
}

func TestArtworkService_CreateArtwork_FileRequired(t *testing.T) {
	fixtures := createTestArtworkService(t)

	artwork, err := fixtures.service.CreateArtwork(context.Background(), uuid.New(), &usecase.CreateArtworkInput{
		Title: "Sunset",
	})

	require.Error(t, err)
	assert.Nil(t, artwork)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestArtworkService_CreateArtwork_RemovesOrphanOnFailure(t *testing.T) {
	fixtures := createTestArtworkService(t)

	ctx := context.Background()
	input := &usecase.CreateArtworkInput{
		Title: "Sunset",
		File: &usecase.FileUpload{
			Filename:    "sunset.png",
			ContentType: "image/png",
			Content:     strings.NewReader("png-bytes"),
		},
	}

	fixtures.fileStore.EXPECT().
		Save(ctx, "sunset.png", "image/png", mock.Anything).
		Return("/uploads/1-sunset.png", nil)

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Artwork")).
		Return(errors.New("insert failed"))
	expectArtworkTransaction(t, fixtures.txManager, txArtworkRepo)

	// The stored file must not outlive the failed listing.
	fixtures.fileStore.EXPECT().Remove(ctx, "/uploads/1-sunset.png").Return(nil)

	artwork, err := fixtures.service.CreateArtwork(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, artwork)
}

func TestArtworkService_UpdateArtwork_Success(t *testing.T) {
	fixtures := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	artworkID := uuid.New()
	newTitle := "Sunrise"
	newPrice := 200.0

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(&entity.Artwork{
			ID:      artworkID,
			OwnerID: ownerID,
			Title:   "Sunset",
			Price:   120.5,
		}, nil)
	txArtworkRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Artwork")).
		Return(nil)
	expectArtworkTransaction(t, fixtures.txManager, txArtworkRepo)

	artwork, err := fixtures.service.UpdateArtwork(ctx, ownerID, artworkID, &usecase.UpdateArtworkInput{
		Title: &newTitle,
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "Sunrise", artwork.Title)
	assert.Equal(t, 200.0, artwork.Price)
}

func TestArtworkService_UpdateArtwork_NonOwnerForbidden(t *testing.T) {
	fixtures := createTestArtworkService(t)

	ctx := context.Background()
	artworkID := uuid.New()
	newTitle := "Sunrise"

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(&entity.Artwork{ID: artworkID, OwnerID: uuid.New()}, nil)
	expectArtworkTransaction(t, fixtures.txManager, txArtworkRepo)

	artwork, err := fixtures.service.UpdateArtwork(ctx, uuid.New(), artworkID, &usecase.UpdateArtworkInput{
		Title: &newTitle,
	})

	require.Error(t, err)
	assert.Nil(t, artwork)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestArtworkService_DeleteArtwork_RemovesFile(t *testing.T) {
	fixtures := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	artworkID := uuid.New()

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(&entity.Artwork{
			ID:       artworkID,
			OwnerID:  ownerID,
			FilePath: "/uploads/1-sunset.png",
		}, nil)
	txArtworkRepo.EXPECT().Delete(ctx, artworkID).Return(nil)
	expectArtworkTransaction(t, fixtures.txManager, txArtworkRepo)

	fixtures.fileStore.EXPECT().Remove(ctx, "/uploads/1-sunset.png").Return(nil)

	require.NoError(t, fixtures.service.DeleteArtwork(ctx, ownerID, artworkID))
}

func TestArtworkService_DeleteArtwork_NotFound(t *testing.T) {
	fixtures := createTestArtworkService(t)

	ctx := context.Background()
	artworkID := uuid.New()

	txArtworkRepo := mockRepo.NewMockArtworkRepository(t)
	txArtworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(nil, repository.ErrArtworkNotFound)
	expectArtworkTransaction(t, fixtures.txManager, txArtworkRepo)

	err := fixtures.service.DeleteArtwork(ctx, uuid.New(), artworkID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrArtworkNotFound)
}

func TestArtworkService_GetArtwork_NotFound(t *testing.T) {
	fixtures := createTestArtworkService(t)

	ctx := context.Background()
	artworkID := uuid.New()

	fixtures.artworkRepo.EXPECT().
		FindByID(ctx, artworkID).
		Return(nil, repository.ErrArtworkNotFound)

	artwork, err := fixtures.service.GetArtwork(ctx, artworkID)

	require.Error(t, err)
	assert.Nil(t, artwork)
	assert.ErrorIs(t, err, domainerrors.ErrArtworkNotFound)
}

func TestArtworkService_ListArtworksByCategory(t *testing.T) {
	fixtures := createTestArtworkService(t)

	ctx := context.Background()
	listed := []*entity.Artwork{
		{ID: uuid.New(), Category: "painting"},
		{ID: uuid.New(), Category: "painting"},
	}

	fixtures.artworkRepo.EXPECT().FindByCategory(ctx, "painting").Return(listed, nil)

	artworks, err := fixtures.service.ListArtworksByCategory(ctx, "painting")

	require.NoError(t, err)
	assert.Len(t, artworks, 2)
}
