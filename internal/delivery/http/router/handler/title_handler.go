package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "critica/internal/delivery/context"
	"critica/internal/delivery/http/response"
	"critica/internal/usecase"
)

// TitleHandler holds dependencies for the title endpoints.
type TitleHandler struct {
	uc usecase.CatalogUsecase
}

// NewTitleHandler is the constructor for TitleHandler, injected by Fx.
func NewTitleHandler(uc usecase.CatalogUsecase) *TitleHandler {
	return &TitleHandler{uc: uc}
}

// ListTitles handles the filtered title listing.
func (h *TitleHandler) ListTitles(c echo.Context) error {
	var query usecase.TitleQueryInput
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	output, err := h.uc.ListTitles(c.Request().Context(), deliverycontext.GetActor(c), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Titles retrieved")
}

// GetTitle handles fetching one title with its computed rating.
func (h *TitleHandler) GetTitle(c echo.Context) error {
	titleID, err := parseUUIDParam(c, "title_id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetTitle(c.Request().Context(), deliverycontext.GetActor(c), titleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Title retrieved")
}

// CreateTitle handles title creation.
func (h *TitleHandler) CreateTitle(c echo.Context) error {
	var input usecase.TitleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid title input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.CreateTitle(c.Request().Context(), deliverycontext.GetActor(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Title created")
}

// UpdateTitle handles title updates.
func (h *TitleHandler) UpdateTitle(c echo.Context) error {
	titleID, err := parseUUIDParam(c, "title_id")
	if err != nil {
		return err
	}

	var input usecase.TitleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid title input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.UpdateTitle(c.Request().Context(), deliverycontext.GetActor(c), titleID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Title updated")
}

// DeleteTitle handles title deletion.
func (h *TitleHandler) DeleteTitle(c echo.Context) error {
	titleID, err := parseUUIDParam(c, "title_id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTitle(c.Request().Context(), deliverycontext.GetActor(c), titleID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
