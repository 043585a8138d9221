package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "artmarket/internal/delivery/context"
	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	"artmarket/internal/domain/service"
	mockService "artmarket/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func nextHandlerCalled(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateContext(t, "")

	var called bool
	err := mw.Authenticate(nextHandlerCalled(&called))(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "Access denied. No token provided.", appErr.Message())
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateContext(t, "Basic dXNlcjpwYXNz")

	var called bool
	err := mw.Authenticate(nextHandlerCalled(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
	assert.False(t, called)
}

func TestAuthenticate_EmptyBearerToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateContext(t, "Bearer ")

	var called bool
	err := mw.Authenticate(nextHandlerCalled(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
	assert.False(t, called)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("tampered-token").Return(nil, errors.New("signature is invalid"))
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateContext(t, "Bearer tampered-token")

	var called bool
	err := mw.Authenticate(nextHandlerCalled(&called))(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Invalid token.", appErr.Message())
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("expired-token").Return(nil, errors.New("token is expired"))
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateContext(t, "Bearer expired-token")

	err := mw.Authenticate(nextHandlerCalled(new(bool)))(c)

	// An expired token is indistinguishable from a malformed one.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{
		UserID:      userID,
		AccountType: entity.AccountTypeSeller,
		IssuedAt:    time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good-token").Return(claims, nil)
	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newGateContext(t, "Bearer good-token")

	var called bool
	err := mw.Authenticate(nextHandlerCalled(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := deliverycontext.GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, entity.AccountTypeSeller.String(), deliverycontext.GetAccountType(c))
}

func TestRequireAccountType_Allowed(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateContext(t, "")
	c.Set(deliverycontext.KeyAccountType, entity.AccountTypeSeller.String())

	var called bool
	err := mw.RequireAccountType(entity.AccountTypeSeller)(nextHandlerCalled(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireAccountType_Forbidden(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateContext(t, "")
	c.Set(deliverycontext.KeyAccountType, entity.AccountTypeBuyer.String())

	var called bool
	err := mw.RequireAccountType(entity.AccountTypeSeller)(nextHandlerCalled(&called))(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, called)
}
