package middleware

import (
	"strings"

	deliverycontext "artmarket/internal/delivery/context"
	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	"artmarket/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates protected routes behind a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the Authorization header.
// A missing or non-bearer header is a 401 with a fixed message; any failed
// verification is a single collapsed 400, so the response never reveals
// whether the token was malformed, tampered with, or expired.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrNoToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		// Expose the verified identity to downstream handlers.
		c.Set(deliverycontext.KeyUserID, claims.UserID)
		c.Set(deliverycontext.KeyAccountType, claims.AccountType.String())

		return next(c)
	}
}

// RequireAccountType is a middleware factory that checks the authenticated
// account's type. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAccountType(required entity.AccountType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deliverycontext.GetAccountType(c) != required.String() {
				return domainerrors.ErrForbidden.WrapMessage("account type not permitted for this route")
			}

			return next(c)
		}
	}
}
