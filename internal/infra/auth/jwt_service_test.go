package auth

import (
	"testing"
	"time"

	"artmarket/config"
	"artmarket/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_signing_secret_key_very_long_for_testing"
	cfg.JWT.TTL = ttl

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Issue(userID, entity.AccountTypeSeller)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.AccountTypeSeller, claims.AccountType)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := jwtService.Issue(uuid.New(), entity.AccountTypeBuyer)
	require.NoError(t, err)

	// Flipping any byte of the token must invalidate the signature.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	claims, err := jwtService.Validate(string(tampered))
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL is rejected by the constructor, so build the service
	// directly to mint an already-expired token.
	svc := &jwtService{secret: []byte("test_signing_secret"), ttl: -time.Minute}

	token, err := svc.Issue(uuid.New(), entity.AccountTypeBuyer)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	other := newTestJWTConfig(time.Hour)
	other.JWT.Secret = "a_completely_different_secret_value"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), entity.AccountTypeBuyer)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_NormalizesLegacyUserIDClaim(t *testing.T) {
	cfg := newTestJWTConfig(time.Hour)
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Mint a token the way historical versions did: subject under "userId".
	userID := uuid.New()
	now := time.Now()
	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID.String(),
		"role":   "buyer",
		"iat":    now.Unix(),
		"exp":    now.Add(time.Hour).Unix(),
	})
	token, err := legacy.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.AccountTypeBuyer, claims.AccountType)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.TTL = time.Hour

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(24 * time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, jwtService.TokenTTL())
}
