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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	fileStore service.FileStore
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	FileStore service.FileStore
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		fileStore: params.FileStore,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the account behind the authenticated subject.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies the provided profile fields. Nil fields are left
// unchanged. Changing the email keeps the store's unique constraint as the
// uniqueness authority.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("profile update target missing")
			}

			return errors.Wrap(err, "failed to load account for profile update")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Address != nil {
			user.Address = *input.Address
		}
		if input.Telephone != nil {
			user.Telephone = *input.Telephone
		}
		if input.Email != nil {
			user.Email = *input.Email
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUniquenessConflict) {
				return domainerrors.ErrDuplicateAccount.WrapMessage("email already in use")
			}

			return errors.Wrap(err, "failed to update profile")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updatedUser, nil
}

// UpdateProfileImage stores the uploaded image and swaps the account's image
// path. The previous image is removed best-effort after the swap commits.
func (srv *profileService) UpdateProfileImage(ctx context.Context, userID uuid.UUID, upload *usecase.FileUpload) (string, error) {
	imagePath, err := srv.fileStore.Save(ctx, upload.Filename, upload.ContentType, upload.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store profile image", slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed.WrapMessage("failed to store profile image")
	}

	var previousImage string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("profile image target missing")
			}

			return errors.Wrap(err, "failed to load account for image update")
		}

		previousImage = user.ProfileImage
		user.ProfileImage = imagePath

		return errors.Wrap(userRepo.Update(ctx, user), "failed to persist profile image path")
	})
	if err != nil {
		// The account row was not updated, drop the orphaned upload.
		if removeErr := srv.fileStore.Remove(ctx, imagePath); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned profile image", slog.Any("error", removeErr))
		}

		return "", err
	}

	if previousImage != "" {
		if removeErr := srv.fileStore.Remove(ctx, previousImage); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove replaced profile image", slog.Any("error", removeErr))
		}
	}

	srv.log(ctx).Debug("Profile image updated", slog.Any("userID", userID))

	return imagePath, nil
}
