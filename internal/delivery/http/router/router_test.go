package router

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"artmarket/internal/delivery/http/middleware"
	"artmarket/internal/delivery/http/router/handler"
	mockService "artmarket/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes_AuthPaths(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(RouterParams{
		UserHandler:    handler.NewUserHandler(nil, nil, nil, nil, logger),
		ArtworkHandler: handler.NewArtworkHandler(nil, nil, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(mockService.NewMockTokenService(t)),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	// Registration and login answer on the root-level paths as well as the
	// /auth aliases.
	assert.True(t, registered[http.MethodPost+" /register"])
	assert.True(t, registered[http.MethodPost+" /login"])
	assert.True(t, registered[http.MethodPost+" /auth/register"])
	assert.True(t, registered[http.MethodPost+" /auth/login"])
	assert.True(t, registered[http.MethodGet+" /health"])
}
