package middleware

import (
	"strings"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// KeyUser is the echo.Context key the authenticated, reduced user is stored under.
	KeyUser = "user"

	// KeyUserID is the echo.Context key the authenticated user's ID is stored under.
	KeyUserID = "userID"

	// KeyToken is the echo.Context key the raw token string is stored under.
	KeyToken = "token"

	// queryParamToken is the query parameter legacy clients send the token in.
	queryParamToken = "token"
)

// AuthMiddleware resolves the caller's account from the request token.
type AuthMiddleware struct {
	uc usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(uc usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{uc: uc}
}

// Authenticate validates the request token and stores the resolved user on
// the context. The token is read from the Authorization header (with or
// without a Bearer prefix) or, failing that, from the token query parameter.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "missing token")
		}

		user, err := m.uc.AuthenticateByToken(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeyUser, user)
		c.Set(KeyUserID, user.ID)
		c.Set(KeyToken, token)

		return next(c)
	}
}

// RequireToken only checks that the token is valid, without resolving the
// account. Used by routes that never touch user data.
func (m *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "missing token")
		}

		if err := m.uc.ValidateToken(token); err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeyToken, token)

		return next(c)
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	return strings.TrimSpace(c.QueryParam(queryParamToken))
}
