// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"artmarket/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	AccountType entity.AccountType
	Name        string
	Address     string
	Telephone   string
}

// LoginInput defines the data required for an account to log in.
// Identifier may be either the username or the email address.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// AuthOutput returns the issued access token together with the account it
// belongs to. Registration and login share this shape. ExpiresIn carries the
// configured token lifetime so clients know when to re-authenticate.
type AuthOutput struct {
	Token     string
	ExpiresIn time.Duration
	User      *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
