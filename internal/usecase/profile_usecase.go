// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"artmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// FileUpload carries an uploaded file through the use case layer without
// binding it to any HTTP framework type.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UpdateProfileInput defines the data required to update an account profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	Telephone *string `json:"telephone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UpdateProfileImage(ctx context.Context, userID uuid.UUID, upload *FileUpload) (string, error)
}
