package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AccountUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every registered account, reduced.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// ByID returns a single account by its ID query parameter.
func (h *UserHandler) ByID(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing id parameter")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// Query searches accounts by a free-text term. A blank term matches every
// account if passed through, so it is answered with an empty result here
// instead of reaching the store.
func (h *UserHandler) Query(c echo.Context) error {
	var input usecase.SearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if strings.TrimSpace(input.SearchTerm) == "" {
		return response.Success(c, http.StatusOK, []*entity.User{}, "Users retrieved successfully")
	}

	users, err := h.uc.SearchUsers(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// RoleByID returns the account's role within one external event. Legacy
// clients send the event ID as a string; it is coerced to an integer here.
func (h *UserHandler) RoleByID(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing id parameter")
	}

	eventID, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("eventID")))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid eventID parameter")
	}

	role, err := h.uc.CheckEventRole(c.Request().Context(), id, eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"role": role}, "Role retrieved successfully")
}

// ResearchInterestByID returns the research interest tags of one account.
func (h *UserHandler) ResearchInterestByID(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing id parameter")
	}

	interests, err := h.uc.GetResearchInterests(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"researchInterest": interests}, "Research interests retrieved successfully")
}

// Update applies a partial profile update and returns a fresh token with
// the updated account.
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	output, err := h.uc.UpdateUser(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "User updated successfully")
}

// updatePasswordInput carries the new password for the reset flow.
type updatePasswordInput struct {
	Password string `json:"password" validate:"required"`
}

// UpdatePassword sets a new password for the account, ending the reset flow.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	id := c.Param("id")

	var input updatePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), id, input.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"updated": true}, "Password updated successfully")
}

// Delete removes the account after re-authenticating it with its password.
// The request token is forwarded so the event service can drop the
// account's event participations.
func (h *UserHandler) Delete(c echo.Context) error {
	var input usecase.DeleteUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if token, ok := c.Get(middleware.KeyToken).(string); ok {
		input.Token = token
	}

	if err := h.uc.DeleteUser(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deleted": true}, "User deleted successfully")
}
