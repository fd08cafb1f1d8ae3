package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"pond/internal/delivery/http/middleware"
	"pond/internal/delivery/http/response"
	"pond/internal/domain/repository"
	"pond/internal/usecase"
)

const defaultListLimit = 50

// FishHandler holds dependencies for gallery handlers.
type FishHandler struct {
	uc usecase.FishUsecase
}

// NewFishHandler is the constructor for FishHandler, injected by Fx.
func NewFishHandler(uc usecase.FishUsecase) *FishHandler {
	return &FishHandler{uc: uc}
}

type voteRequest struct {
	FishID string `json:"fishId" validate:"required"`
	Vote   string `json:"vote" validate:"required,oneof=up down"`
}

type reportRequest struct {
	FishID    string `json:"fishId" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	UserAgent string `json:"userAgent"`
	URL       string `json:"url"`
}

// List handles the gallery listing request.
func (h *FishHandler) List(c echo.Context) error {
	params := repository.ListFishParams{
		OrderBy:   c.QueryParam("orderBy"),
		Ascending: strings.EqualFold(c.QueryParam("order"), "asc"),
		Limit:     defaultListLimit,
		Random:    c.QueryParam("random") == "true",
	}

	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			return response.Error(c, http.StatusBadRequest, "invalid limit")
		}
		params.Limit = limit
	}

	if userIDParam := c.QueryParam("userId"); userIDParam != "" {
		userID, err := uuid.Parse(userIDParam)
		if err != nil {
			return response.Error(c, http.StatusBadRequest, "invalid userId")
		}
		params.UserID = &userID
	}

	// Listings show visible, non-deleted doodles unless the query says
	// otherwise.
	visible := c.QueryParam("isVisible") != "false"
	deleted := c.QueryParam("deleted") == "true"
	params.IsVisible = &visible
	params.Deleted = &deleted

	fishes, err := h.uc.List(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewFishList(fishes))
}

// Get handles the single-doodle request.
func (h *FishHandler) Get(c echo.Context) error {
	fish, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewFish(fish))
}

// Vote handles the gallery vote request.
func (h *FishHandler) Vote(c echo.Context) error {
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid vote input")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid vote input")
	}

	fish, err := h.uc.Vote(c.Request().Context(), &usecase.VoteInput{
		FishID: req.FishID,
		Vote:   req.Vote,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewFish(fish))
}

// Upload handles the multipart doodle upload. An authenticated session wins
// over the form's userId field when deciding ownership.
func (h *FishHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	userID := c.FormValue("userId")
	if claimedID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		userID = claimedID.String()
	}

	fish, err := h.uc.Upload(c.Request().Context(), &usecase.UploadFishInput{
		Image:           image,
		Artist:          c.FormValue("artist"),
		UserID:          userID,
		NeedsModeration: c.FormValue("needsModeration") == "true",
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.NewFish(fish))
}

// Report handles the complaint request. The reporting client's user agent is
// taken from the header when the body omits it.
func (h *FishHandler) Report(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid report input")
	}

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = c.Request().UserAgent()
	}

	err := h.uc.Report(c.Request().Context(), &usecase.ReportInput{
		FishID:    req.FishID,
		Reason:    req.Reason,
		UserAgent: userAgent,
		URL:       req.URL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c)
}
