package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"artmarket/internal/delivery/http/response"
	"artmarket/internal/domain/entity"
	domainerrors "artmarket/internal/domain/errors"
	"artmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArtworkHandler holds dependencies for artwork-related handlers.
type ArtworkHandler struct {
	artworkUC    usecase.ArtworkUsecase
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewArtworkHandler is the constructor for ArtworkHandler, injected by Fx.
func NewArtworkHandler(artworkUC usecase.ArtworkUsecase, collectionUC usecase.CollectionUsecase, logger *slog.Logger) *ArtworkHandler {
	return &ArtworkHandler{
		artworkUC:    artworkUC,
		collectionUC: collectionUC,
		logger:       logger,
	}
}

// --- Response DTOs ---

type artworkResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	FilePath    string    `json:"filePath,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type purchaseResponse struct {
	ID        uuid.UUID        `json:"id"`
	ArtworkID uuid.UUID        `json:"artworkId"`
	Price     float64          `json:"price"`
	CreatedAt time.Time        `json:"createdAt"`
	Artwork   *artworkResponse `json:"artwork,omitempty"`
}

func toArtworkResponse(artwork *entity.Artwork) *artworkResponse {
	if artwork == nil {
		return nil
	}

	return &artworkResponse{
		ID:          artwork.ID,
		OwnerID:     artwork.OwnerID,
		Title:       artwork.Title,
		Description: artwork.Description,
		Category:    artwork.Category,
		Price:       artwork.Price,
		FilePath:    artwork.FilePath,
		CreatedAt:   artwork.CreatedAt,
		UpdatedAt:   artwork.UpdatedAt,
	}
}

func toArtworkResponseList(artworks []*entity.Artwork) []*artworkResponse {
	responses := make([]*artworkResponse, 0, len(artworks))
	for _, artwork := range artworks {
		responses = append(responses, toArtworkResponse(artwork))
	}

	return responses
}

func toPurchaseResponse(record *usecase.PurchaseRecord) *purchaseResponse {
	return &purchaseResponse{
		ID:        record.Purchase.ID,
		ArtworkID: record.Purchase.ArtworkID,
		Price:     record.Purchase.Price,
		CreatedAt: record.Purchase.CreatedAt,
		Artwork:   toArtworkResponse(record.Artwork),
	}
}

// ListArtworks returns every listed artwork.
func (h *ArtworkHandler) ListArtworks(c echo.Context) error {
	artworks, err := h.artworkUC.ListArtworks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArtworkResponseList(artworks), "Artworks retrieved successfully")
}

// ListArtworksByCategory returns the artworks in one browsing category.
func (h *ArtworkHandler) ListArtworksByCategory(c echo.Context) error {
	artworks, err := h.artworkUC.ListArtworksByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArtworkResponseList(artworks), "Artworks retrieved successfully")
}

// GetArtwork returns one artwork by ID.
func (h *ArtworkHandler) GetArtwork(c echo.Context) error {
	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid artwork id")
	}

	artwork, err := h.artworkUC.GetArtwork(c.Request().Context(), artworkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArtworkResponse(artwork), "Artwork retrieved successfully")
}

// CreateArtwork lists a new artwork from a multipart form with an image file.
func (h *ArtworkHandler) CreateArtwork(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	if title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be a non-negative number")
	}

	input := &usecase.CreateArtworkInput{
		Title:       title,
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Price:       price,
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("artwork image is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrUploadFailed.WrapMessage("failed to open uploaded image")
	}
	defer file.Close()

	input.File = &usecase.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	}

	artwork, err := h.artworkUC.CreateArtwork(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toArtworkResponse(artwork), "Artwork created successfully")
}

// UpdateArtwork updates an existing listing owned by the caller.
func (h *ArtworkHandler) UpdateArtwork(c echo.Context) error {
	requesterID, err := currentUserID(c)
	if err != nil {
		return err
	}

	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid artwork id")
	}

	var input usecase.UpdateArtworkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid artwork input")
	}

	artwork, err := h.artworkUC.UpdateArtwork(c.Request().Context(), requesterID, artworkID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArtworkResponse(artwork), "Artwork updated successfully")
}

// DeleteArtwork removes a listing owned by the caller.
func (h *ArtworkHandler) DeleteArtwork(c echo.Context) error {
	requesterID, err := currentUserID(c)
	if err != nil {
		return err
	}

	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid artwork id")
	}

	if err := h.artworkUC.DeleteArtwork(c.Request().Context(), requesterID, artworkID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Artwork deleted successfully")
}

// PurchaseArtwork records a purchase of the artwork by the caller.
func (h *ArtworkHandler) PurchaseArtwork(c echo.Context) error {
	buyerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid artwork id")
	}

	purchase, err := h.collectionUC.PurchaseArtwork(c.Request().Context(), buyerID, artworkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &purchaseResponse{
		ID:        purchase.ID,
		ArtworkID: purchase.ArtworkID,
		Price:     purchase.Price,
		CreatedAt: purchase.CreatedAt,
	}, "Artwork purchased successfully")
}
