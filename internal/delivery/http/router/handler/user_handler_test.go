package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"artmarket/internal/delivery/http/validator"
	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	mockUsecase "artmarket/internal/mocks/usecase"
	"artmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestUserHandler(userUC usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestUserHandler_Register(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "artlover",
		Email:        "artlover@example.com",
		PasswordHash: "$2a$12$secret",
		AccountType:  entity.AccountTypeBuyer,
		CreatedAt:    time.Now(),
	}

	userUC := mockUsecase.NewMockUserUsecase(t)
	userUC.EXPECT().Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthOutput{Token: "signed-token", ExpiresIn: 24 * time.Hour, User: user}, nil)
	handler := newTestUserHandler(userUC)

	body := `{"username":"artlover","email":"artlover@example.com","password":"supersecret","accountType":"buyer"}`
	c, rec := newJSONContext(t, http.MethodPost, "/register", body)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success     bool   `json:"success"`
		Message     string `json:"message"`
		Token       string `json:"token"`
		AccountType string `json:"accountType"`
		ExpiresIn   int64  `json:"expiresIn"`
		User        struct {
			ID       uuid.UUID `json:"id"`
			Username string    `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "Account registered successfully", resp.Message)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "buyer", resp.AccountType)
	assert.Equal(t, int64(86400), resp.ExpiresIn)
	assert.Equal(t, user.ID, resp.User.ID)

	// The stored digest must never appear in the response.
	assert.NotContains(t, rec.Body.String(), "$2a$12$secret")
	assert.NotContains(t, rec.Body.String(), "passwordDigest")
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	handler := newTestUserHandler(userUC)

	// Password below the minimum length never reaches the use case.
	body := `{"username":"artlover","email":"artlover@example.com","password":"short","accountType":"buyer"}`
	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", body)

	err := handler.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserHandler_Register_UnknownAccountType(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	handler := newTestUserHandler(userUC)

	body := `{"username":"artlover","email":"artlover@example.com","password":"supersecret","accountType":"admin"}`
	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", body)

	err := handler.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserHandler_Login(t *testing.T) {
	user := &entity.User{
		ID:          uuid.New(),
		Username:    "galleria",
		Email:       "galleria@example.com",
		AccountType: entity.AccountTypeSeller,
		CreatedAt:   time.Now(),
	}

	userUC := mockUsecase.NewMockUserUsecase(t)
	userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{
		Identifier: "galleria@example.com",
		Password:   "supersecret",
	}).Return(&usecase.AuthOutput{Token: "signed-token", ExpiresIn: 24 * time.Hour, User: user}, nil)
	handler := newTestUserHandler(userUC)

	body := `{"identifier":"galleria@example.com","password":"supersecret"}`
	c, rec := newJSONContext(t, http.MethodPost, "/login", body)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")

	// token and accountType live at the top level of the body, not under data.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw, "token")
	assert.Contains(t, raw, "accountType")
	assert.NotContains(t, raw, "data")
	assert.Equal(t, `"signed-token"`, string(raw["token"]))
	assert.Equal(t, `"seller"`, string(raw["accountType"]))
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	userUC.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))
	handler := newTestUserHandler(userUC)

	body := `{"identifier":"galleria","password":"wrongpass"}`
	c, _ := newJSONContext(t, http.MethodPost, "/auth/login", body)

	err := handler.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
