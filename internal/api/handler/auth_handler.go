package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/user-system/internal/api/metrics"
	"github.com/clinicore/user-system/internal/core/domain"
	"github.com/clinicore/user-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, successResponse{
		Status:  "success",
		Message: "Logged In successfully",
		Data:    loginData{User: user, AccessToken: token},
	})
}
