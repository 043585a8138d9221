package impl

import (
	"context"
	"testing"
	"time"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectTransaction makes the transaction manager run the callback against a
// factory backed by the given transactional user repository.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txUserRepo *mockRepo.MockUserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(txUserRepo)

			return fn(factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:    "painter",
		Email:       "painter@example.com",
		Password:    "Password123!",
		AccountType: entity.AccountTypeSeller,
		Name:        "The Painter",
	}
	newID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByUsernameOrEmail(ctx, input.Username, input.Email).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
		}).
		Return(nil)
	expectTransaction(t, fixtures.txManager, txUserRepo)

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fixtures.tokenService.EXPECT().Issue(newID, entity.AccountTypeSeller).Return("signed-token", nil)
	fixtures.tokenService.EXPECT().TokenTTL().Return(24 * time.Hour)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, 24*time.Hour, output.ExpiresIn)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.AccountTypeSeller, output.User.AccountType)
}

func TestUserService_Register_DuplicatePreCheck(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:    "painter",
		Email:       "painter@example.com",
		Password:    "Password123!",
		AccountType: entity.AccountTypeBuyer,
	}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByUsernameOrEmail(ctx, input.Username, input.Email).
		Return(&entity.User{ID: uuid.New(), Username: input.Username}, nil)
	expectTransaction(t, fixtures.txManager, txUserRepo)

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestUserService_Register_ConcurrentConflict(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:    "painter",
		Email:       "painter@example.com",
		Password:    "Password123!",
		AccountType: entity.AccountTypeBuyer,
	}

	// Pre-check passes but the insert races a concurrent registration, so
	// the store's unique constraint has the final word.
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByUsernameOrEmail(ctx, input.Username, input.Email).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUniquenessConflict)
	expectTransaction(t, fixtures.txManager, txUserRepo)

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestUserService_Register_UnknownAccountType(t *testing.T) {
	fixtures := createTestUserService(t)

	output, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Username:    "painter",
		Email:       "painter@example.com",
		Password:    "Password123!",
		AccountType: entity.AccountType("admin"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:    "painter",
		Email:       "painter@example.com",
		Password:    "Password123!",
		AccountType: entity.AccountTypeBuyer,
	}

	// No transaction expectation: a hash failure must surface before any
	// transaction is opened.
	fixtures.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	fixtures.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_Login_ByUsername(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "painter",
		Email:        "painter@example.com",
		PasswordHash: "stored_hash",
		AccountType:  entity.AccountTypeSeller,
	}

	fixtures.userRepo.EXPECT().FindByUsername(ctx, "painter").Return(user, nil)
	fixtures.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fixtures.tokenService.EXPECT().Issue(user.ID, entity.AccountTypeSeller).Return("signed-token", nil)
	fixtures.tokenService.EXPECT().TokenTTL().Return(24 * time.Hour)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Identifier: "painter",
		Password:   "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, 24*time.Hour, output.ExpiresIn)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_ByEmail(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "painter",
		Email:        "painter@example.com",
		PasswordHash: "stored_hash",
		AccountType:  entity.AccountTypeBuyer,
	}

	// An identifier containing '@' is resolved through the email index.
	fixtures.userRepo.EXPECT().FindByEmail(ctx, "painter@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fixtures.tokenService.EXPECT().Issue(user.ID, entity.AccountTypeBuyer).Return("signed-token", nil)
	fixtures.tokenService.EXPECT().TokenTTL().Return(24 * time.Hour)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Identifier: "painter@example.com",
		Password:   "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	t.Run("unknown identifier", func(t *testing.T) {
		fixtures := createTestUserService(t)
		ctx := context.Background()

		fixtures.userRepo.EXPECT().
			FindByUsername(ctx, "ghost").
			Return(nil, repository.ErrUserNotFound)

		output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
			Identifier: "ghost",
			Password:   "whatever",
		})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fixtures := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{
			ID:           uuid.New(),
			Username:     "painter",
			PasswordHash: "stored_hash",
			AccountType:  entity.AccountTypeBuyer,
		}

		fixtures.userRepo.EXPECT().FindByUsername(ctx, "painter").Return(user, nil)
		fixtures.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

		output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
			Identifier: "painter",
			Password:   "wrong",
		})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_Login_RepositoryError(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindByUsername(ctx, "painter").
		Return(nil, errors.New("connection refused"))

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Identifier: "painter",
		Password:   "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
