package service

import (
	"time"

	"artmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the canonical decoded content of a bearer token:
// the subject account and its role, plus the validity window.
type Claims struct {
	UserID      uuid.UUID
	AccountType entity.AccountType
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token asserting the account
	// identity and role. The TTL is the one canonical configured value.
	Issue(userID uuid.UUID, accountType entity.AccountType) (string, error)

	// Validate checks signature and expiry of a token string and returns the
	// normalized claims. Any failure (bad signature, malformed structure,
	// expiry) is reported as a single opaque error.
	Validate(tokenString string) (*Claims, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
