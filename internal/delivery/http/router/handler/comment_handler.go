package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "critica/internal/delivery/context"
	"critica/internal/delivery/http/response"
	"critica/internal/usecase"
)

// CommentHandler holds dependencies for the comment endpoints.
type CommentHandler struct {
	uc usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

func commentScope(c echo.Context) (titleID, reviewID uuid.UUID, err error) {
	titleID, err = parseUUIDParam(c, "title_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	reviewID, err = parseUUIDParam(c, "review_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return titleID, reviewID, nil
}

// ListComments handles listing the comments under a review.
func (h *CommentHandler) ListComments(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
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

	output, err := h.uc.ListComments(c.Request().Context(), deliverycontext.GetActor(c), titleID, reviewID, &page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Comments retrieved")
}

// GetComment handles fetching one comment under a review.
func (h *CommentHandler) GetComment(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetComment(c.Request().Context(), deliverycontext.GetActor(c), titleID, reviewID, commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Comment retrieved")
}

// CreateComment handles posting a comment on a review.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}

	var input usecase.CommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.CreateComment(c.Request().Context(), deliverycontext.GetActor(c), titleID, reviewID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Comment created")
}

// UpdateComment handles editing a comment.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	var input usecase.CommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.UpdateComment(c.Request().Context(), deliverycontext.GetActor(c), titleID, reviewID, commentID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Comment updated")
}

// DeleteComment handles deleting a comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteComment(c.Request().Context(), deliverycontext.GetActor(c), titleID, reviewID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
