package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "artmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/artworks", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var resp domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestHandleHTTPError_NoToken(t *testing.T) {
	mw := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(domainerrors.ErrNoToken, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Access denied. No token provided.", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NO_TOKEN", resp.Error.Code)
}

func TestHandleHTTPError_InvalidToken(t *testing.T) {
	mw := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(domainerrors.ErrInvalidToken, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "Invalid token.", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_TOKEN", resp.Error.Code)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	mw := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	// Services wrap domain errors with context; the handler still finds them.
	mw.HandleHTTPError(domainerrors.ErrDuplicateAccount.WrapMessage("account pre-check found an existing match"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "Email or username already exists", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DUPLICATE_ACCOUNT", resp.Error.Code)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "Not Found", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "HTTP_ERROR", resp.Error.Code)
}

func TestHandleHTTPError_UnknownErrorStaysGeneric(t *testing.T) {
	mw := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), resp.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
