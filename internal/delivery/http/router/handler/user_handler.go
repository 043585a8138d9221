// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "artmarket/internal/delivery/context"
	"artmarket/internal/delivery/http/response"
	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	"artmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and profile related handlers.
type UserHandler struct {
	userUC       usecase.UserUsecase
	profileUC    usecase.ProfileUsecase
	artworkUC    usecase.ArtworkUsecase
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(
	userUC usecase.UserUsecase,
	profileUC usecase.ProfileUsecase,
	artworkUC usecase.ArtworkUsecase,
	collectionUC usecase.CollectionUsecase,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userUC:       userUC,
		profileUC:    profileUC,
		artworkUC:    artworkUC,
		collectionUC: collectionUC,
		logger:       logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	AccountType string `json:"accountType" validate:"required,oneof=buyer seller"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Telephone   string `json:"telephone"`
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// --- Response DTOs ---

// userResponse is the client-facing account shape. The password digest never
// leaves the service.
type userResponse struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AccountType  string    `json:"accountType"`
	Name         string    `json:"name,omitempty"`
	Address      string    `json:"address,omitempty"`
	Telephone    string    `json:"telephone,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// authResponse is the auth success body. Unlike the other endpoints, token
// and accountType sit at the top level of the body rather than inside a data
// envelope, which is the shape clients authenticate against.
type authResponse struct {
	Success     bool          `json:"success"`
	Code        int           `json:"code"`
	Message     string        `json:"message"`
	Token       string        `json:"token"`
	AccountType string        `json:"accountType"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *userResponse `json:"user"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		AccountType:  user.AccountType.String(),
		Name:         user.Name,
		Address:      user.Address,
		Telephone:    user.Telephone,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
	}
}

func authSuccess(c echo.Context, statusCode int, output *usecase.AuthOutput, message string) error {
	return c.JSON(statusCode, &authResponse{
		Success:     true,
		Code:        statusCode,
		Message:     message,
		Token:       output.Token,
		AccountType: output.User.AccountType.String(),
		ExpiresIn:   int64(output.ExpiresIn.Seconds()),
		User:        toUserResponse(output.User),
	})
}

// currentUserID extracts the authenticated account ID placed by the access gate.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return userID, nil
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		AccountType: entity.AccountType(req.AccountType),
		Name:        req.Name,
		Address:     req.Address,
		Telephone:   req.Telephone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return authSuccess(c, http.StatusCreated, output, "Account registered successfully")
}

// Login handles the account login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return authSuccess(c, http.StatusOK, output, "Login successful")
}

// GetProfile handles the request to get the current account's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// UpdateProfile handles partial profile updates.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// UploadProfileImage handles the multipart profile image upload.
func (h *UserHandler) UploadProfileImage(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrUploadFailed.WrapMessage("image file is missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrUploadFailed.WrapMessage("failed to open uploaded image")
	}
	defer file.Close()

	imagePath, err := h.profileUC.UpdateProfileImage(c.Request().Context(), userID, &usecase.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"profileImage": imagePath}, "Profile image updated successfully")
}

// GetOwnArtworks lists the artworks the current account has listed.
func (h *UserHandler) GetOwnArtworks(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	artworks, err := h.artworkUC.ListArtworksByOwner(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArtworkResponseList(artworks), "Artworks retrieved successfully")
}

// GetWishlist lists the current account's wishlisted artworks.
func (h *UserHandler) GetWishlist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	artworks, err := h.collectionUC.ListWishlist(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArtworkResponseList(artworks), "Wishlist retrieved successfully")
}

// AddToWishlist saves an artwork to the current account's wishlist.
func (h *UserHandler) AddToWishlist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	artworkID, err := uuid.Parse(c.Param("artworkId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid artwork id")
	}

	if err := h.collectionUC.AddToWishlist(c.Request().Context(), userID, artworkID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Artwork added to wishlist")
}

// RemoveFromWishlist drops an artwork from the current account's wishlist.
func (h *UserHandler) RemoveFromWishlist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	artworkID, err := uuid.Parse(c.Param("artworkId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid artwork id")
	}

	if err := h.collectionUC.RemoveFromWishlist(c.Request().Context(), userID, artworkID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Artwork removed from wishlist")
}

// GetPurchases lists the current account's purchases.
func (h *UserHandler) GetPurchases(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	records, err := h.collectionUC.ListPurchases(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	purchases := make([]*purchaseResponse, 0, len(records))
	for _, record := range records {
		purchases = append(purchases, toPurchaseResponse(record))
	}

	return response.Success(c, http.StatusOK, purchases, "Purchases retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
