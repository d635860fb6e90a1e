package handler

import (
	"net/http"

	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ValidationHandler answers the live uniqueness probes the registration
// form fires while the user types.
type ValidationHandler struct {
	uc usecase.AccountUsecase
}

// NewValidationHandler is the constructor for ValidationHandler, injected by Fx.
func NewValidationHandler(uc usecase.AccountUsecase) *ValidationHandler {
	return &ValidationHandler{uc: uc}
}

// UniqueUsername reports whether the given username is still free.
func (h *ValidationHandler) UniqueUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing username parameter")
	}

	available, err := h.uc.IsUsernameAvailable(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"unique": available}, "Username checked successfully")
}

// UniqueEmail reports whether the given email is still free.
func (h *ValidationHandler) UniqueEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing email parameter")
	}

	available, err := h.uc.IsEmailAvailable(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"unique": available}, "Email checked successfully")
}
