package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

// UserHandler exposes the self-service profile and the admin user endpoints.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UpdateProfile patches the signed-in user's own name and email.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/v1/users/update-profile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.users.UpdateProfile(c.Request().Context(), user.ID, ports.ProfileUpdateInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, echo.Map{"user": updated})
}

// DeleteProfile deactivates the signed-in user's account. The document is
// kept but disappears from all reads.
//
// @Summary      Deactivate own account
// @Tags         users
// @Success      204
// @Security     BearerAuth
// @Router       /api/v1/users/delete-profile [delete]
func (h *UserHandler) DeleteProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.users.DeleteProfile(c.Request().Context(), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, len(users), echo.Map{"users": users})
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"user": user})
}

// Create handles POST /api/v1/users. Accounts are created through signup;
// this route exists for API symmetry only.
func (h *UserHandler) Create(c echo.Context) error {
	return domain.NewInternal("This route is not yet defined")
}

// Update handles PATCH /api/v1/users/:id (admin).
func (h *UserHandler) Update(c echo.Context) error {
	var req adminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), ports.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"user": user})
}

// Delete handles DELETE /api/v1/users/:id (admin). This is a hard delete.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
