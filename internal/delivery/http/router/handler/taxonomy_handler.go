package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "critica/internal/delivery/context"
	"critica/internal/delivery/http/response"
	"critica/internal/usecase"
)

// TaxonomyHandler holds dependencies for the genre and category endpoints.
// Both taxonomies share one usecase; the handler only differs in routes.
type TaxonomyHandler struct {
	uc usecase.CatalogUsecase
}

// NewTaxonomyHandler is the constructor for TaxonomyHandler, injected by Fx.
func NewTaxonomyHandler(uc usecase.CatalogUsecase) *TaxonomyHandler {
	return &TaxonomyHandler{uc: uc}
}

// ListGenres handles the genre listing.
func (h *TaxonomyHandler) ListGenres(c echo.Context) error {
	var query usecase.TaxonomyQueryInput
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	output, err := h.uc.ListGenres(c.Request().Context(), deliverycontext.GetActor(c), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Genres retrieved")
}

// CreateGenre handles genre creation.
func (h *TaxonomyHandler) CreateGenre(c echo.Context) error {
	var input usecase.TaxonomyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid genre input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.CreateGenre(c.Request().Context(), deliverycontext.GetActor(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Genre created")
}

// DeleteGenre handles genre deletion by slug.
func (h *TaxonomyHandler) DeleteGenre(c echo.Context) error {
	if err := h.uc.DeleteGenre(c.Request().Context(), deliverycontext.GetActor(c), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListCategories handles the category listing.
func (h *TaxonomyHandler) ListCategories(c echo.Context) error {
	var query usecase.TaxonomyQueryInput
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	output, err := h.uc.ListCategories(c.Request().Context(), deliverycontext.GetActor(c), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Categories retrieved")
}

// CreateCategory handles category creation.
func (h *TaxonomyHandler) CreateCategory(c echo.Context) error {
	var input usecase.TaxonomyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.CreateCategory(c.Request().Context(), deliverycontext.GetActor(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Category created")
}

// DeleteCategory handles category deletion by slug.
func (h *TaxonomyHandler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), deliverycontext.GetActor(c), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
