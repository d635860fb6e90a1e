// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration, login and the password reset flow.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AuthenticateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// CurrentUser returns the account the request token resolves to.
// The auth middleware has already verified the token and loaded the user.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user, ok := c.Get(middleware.KeyUser).(*entity.User)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "No authenticated user on request")
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// ValidateToken reports whether the request token is valid. The check
// itself happened in the middleware; reaching this handler means success.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{"valid": true}, "Token is valid")
}

// securityQuestionInput identifies the account by email.
type securityQuestionInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SecurityQuestion returns the stored security question for the account
// with the given email, starting the password reset flow.
func (h *AuthHandler) SecurityQuestion(c echo.Context) error {
	var input securityQuestionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid security question input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GetSecurityQuestion(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Security question retrieved successfully")
}

// CheckSecurityAnswer verifies the submitted security answer and, on
// success, returns a fresh token for the password reset.
func (h *AuthHandler) CheckSecurityAnswer(c echo.Context) error {
	var input usecase.SecurityAnswerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid security answer input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CheckSecurityAnswer(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Security answer accepted")
}
