// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "artmarket/internal/delivery/context"
	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	"artmarket/internal/domain/repository"
	"artmarket/internal/domain/service"
	"artmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
// The uniqueness pre-check is a fast path; the database unique constraint
// remains the authority, so a conflicting concurrent insert still surfaces
// as ErrDuplicateAccount rather than a raw constraint error.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration",
		slog.String("username", input.Username),
		slog.Any("account_type", input.AccountType),
	)

	if !input.AccountType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account type")
	}

	// Hash before the transaction opens (bcrypt is CPU-bound); only the
	// pre-check and insert need to run against the store.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
		if err == nil {
			return domainerrors.ErrDuplicateAccount.WrapMessage("account pre-check found an existing match")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to pre-check account uniqueness")
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			AccountType:  input.AccountType,
			Name:         input.Name,
			Address:      input.Address,
			Telephone:    input.Telephone,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUniquenessConflict) {
				return domainerrors.ErrDuplicateAccount.WrapMessage("account created concurrently")
			}

			return errors.Wrap(err, "failed to create account during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed",
			slog.String("username", input.Username),
			slog.Any("error", err),
		)

		return nil, err
	}

	// A successful registration always issues a token so the client can act
	// as the new account immediately.
	token, err := srv.tokenService.Issue(registeredUser.ID, registeredUser.AccountType)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresIn: srv.tokenService.TokenTTL(),
		User:      registeredUser,
	}, nil
}

// Login orchestrates the account login process. An unknown identifier and a
// wrong password both collapse to ErrInvalidCredentials so the response does
// not reveal which part failed.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("identifier", input.Identifier))

	user, err := srv.findByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown login identifier")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(user.ID, user.AccountType)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresIn: srv.tokenService.TokenTTL(),
		User:      user,
	}, nil
}

// findByIdentifier resolves a login identifier to an account. Identifiers
// containing '@' are treated as email addresses, everything else as usernames.
func (srv *userService) findByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	if strings.Contains(identifier, "@") {
		return srv.userRepo.FindByEmail(ctx, identifier)
	}

	return srv.userRepo.FindByUsername(ctx, identifier)
}
