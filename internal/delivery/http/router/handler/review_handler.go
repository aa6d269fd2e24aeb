package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "critica/internal/delivery/context"
	"critica/internal/delivery/http/response"
	"critica/internal/usecase"
)

// ReviewHandler holds dependencies for the review endpoints.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// ListReviews handles listing the reviews of a title.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	titleID, err := parseUUIDParam(c, "title_id")
	if err != nil {
		return err
	}

	var page usecase.PageInput
	if err := c.Bind(&page); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}
	if err := c.Validate(&page); err != nil {
		return err
	}

	output, err := h.uc.ListReviews(c.Request().Context(), deliverycontext.GetActor(c), titleID, &page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Reviews retrieved")
}

// GetReview handles fetching one review of a title.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	titleID, err := parseUUIDParam(c, "title_id")
	if err != nil {
		return err
	}
	reviewID, err := parseUUIDParam(c, "review_id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetReview(c.Request().Context(), deliverycontext.GetActor(c), titleID, reviewID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Review retrieved")
}

// CreateReview handles posting a review on a title.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	titleID, err := parseUUIDParam(c, "title_id")
	if err != nil {
		return err
	}

	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.CreateReview(c.Request().Context(), deliverycontext.GetActor(c), titleID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Review created")
}

// UpdateReview handles editing a review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	titleID, err := parseUUIDParam(c, "title_id")
	if err != nil {
		return err
	}
	reviewID, err := parseUUIDParam(c, "review_id")
	if err != nil {
		return err
	}

	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.UpdateReview(c.Request().Context(), deliverycontext.GetActor(c), titleID, reviewID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Review updated")
}

// DeleteReview handles deleting a review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	titleID, err := parseUUIDParam(c, "title_id")
	if err != nil {
		return err
	}
	reviewID, err := parseUUIDParam(c, "review_id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), deliverycontext.GetActor(c), titleID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
