package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/user-system/internal/api/metrics"
	"github.com/clinicore/user-system/internal/core/domain"
	"github.com/clinicore/user-system/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers returns the user listing. The endpoint's business behavior is a
// placeholder; its role gating is the part that matters.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) GetUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, successResponse{
		Status:  "success",
		Message: "Users fetched successfully",
		Data:    h.userService.ListUsers(),
	})
}

// CreateAdmin provisions a user with a linked admin record atomically.
//
// @Summary      Create an admin
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createAdminRequest  true  "User fields plus admin role"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/create-admin [post]
func (h *UserHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateAdminInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Gender:    domain.Gender(req.Gender),
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Role:      domain.Role(req.Role),
		AdminRole: domain.AdminRole(req.AdminRole),
	}

	user, admin, err := h.userService.CreateAdmin(c.Request().Context(), input)
	if err != nil {
		return err
	}
	metrics.AdminsCreatedTotal.WithLabelValues(string(admin.AdminRole)).Inc()

	return c.JSON(http.StatusCreated, successResponse{
		Status:  "success",
		Message: "Admin created successfully",
		Data:    createAdminData{User: user, Admin: admin},
	})
}
