package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/ports"
)

// UserHandler handles profile reads and user administration.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type managersResponse struct {
	Managers []domain.Manager `json:"managers"`
}

type updateUserRequest struct {
	FullName     *string `json:"full_name"`
	Age          *int    `json:"age"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	PassportData *string `json:"passport_data"`
	Role         *string `json:"role"`
	ManagerID    *int64  `json:"manager_id"`
}

// Me returns the caller's own profile.
//
// @Summary      Own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := h.users.Profile(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// List returns all users. Admin and manager only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// Managers returns the public manager listing.
//
// @Summary      List managers
// @Tags         users
// @Produce      json
// @Success      200  {object}  managersResponse
// @Router       /api/managers [get]
func (h *UserHandler) Managers(c echo.Context) error {
	managers, err := h.users.Managers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, managersResponse{Managers: managers})
}

// Update applies a partial update to a user. Allowed for the user
// themselves or an admin; role and manager assignment apply to admins only.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req updateUserRequest
	bindLenient(c, &req)

	err = h.users.Update(c.Request().Context(), sess, id, domain.UserUpdate{
		FullName:     req.FullName,
		Age:          req.Age,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		PassportData: req.PassportData,
		Role:         req.Role,
		ManagerID:    req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user updated"})
}

// Delete removes a user. Admin only; self-deletion is rejected.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.users.Delete(c.Request().Context(), sess, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
