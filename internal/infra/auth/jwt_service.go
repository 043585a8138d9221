// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"artmarket/config"
	"artmarket/internal/domain/entity"
	"artmarket/internal/domain/service"
)

// ErrTokenInvalid is the single opaque verification failure. Bad signature,
// malformed structure and expiry all collapse into it so the caller cannot
// tell which check failed.
var ErrTokenInvalid = errors.New("invalid token")

// tokenClaims is the wire shape of the JWT payload.
// LegacyUserID tolerates tokens minted by historical versions that carried
// the subject under "userId" instead of the registered "sub" claim.
type tokenClaims struct {
	Role         string `json:"role,omitempty"`
	LegacyUserID string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Process-wide signing secret, read once at startup.
	ttl    time.Duration // The one canonical token lifetime.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    cfg.JWT.TTL,
	}, nil
}

// Issue creates a signed token asserting the account identity and role.
func (s *jwtService) Issue(userID uuid.UUID, accountType entity.AccountType) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: accountType.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks signature and expiry, then normalizes the claims to the
// canonical {subject, role} schema regardless of historical key naming.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.LegacyUserID
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	normalized := &service.Claims{
		UserID:      userID,
		AccountType: entity.AccountType(claims.Role),
	}
	if claims.IssuedAt != nil {
		normalized.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		normalized.ExpiresAt = claims.ExpiresAt.Time
	}

	return normalized, nil
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
