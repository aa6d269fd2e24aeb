package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "critica/internal/delivery/context"
	"critica/internal/delivery/http/response"
	"critica/internal/usecase"
)

// UserHandler holds dependencies for the user endpoints.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ListUsers handles the administrative user listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	var query usecase.UserQueryInput
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	output, err := h.uc.ListUsers(c.Request().Context(), deliverycontext.GetActor(c), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Users retrieved")
}

// GetUser handles fetching one user by username.
func (h *UserHandler) GetUser(c echo.Context) error {
	output, err := h.uc.GetUser(c.Request().Context(), deliverycontext.GetActor(c), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "User retrieved")
}

// CreateUser handles administrative user creation.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.CreateUser(c.Request().Context(), deliverycontext.GetActor(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User created")
}

// UpdateUser handles administrative user updates.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.UpdateUser(c.Request().Context(), deliverycontext.GetActor(c), c.Param("username"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "User updated")
}

// DeleteUser handles administrative user deletion.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), deliverycontext.GetActor(c), c.Param("username")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetMe returns the acting user's own profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	output, err := h.uc.GetMe(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved")
}

// UpdateMe updates the acting user's own profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var input usecase.UpdateMeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.UpdateMe(c.Request().Context(), deliverycontext.GetActor(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated")
}
