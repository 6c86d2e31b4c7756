package middleware

import (
	deliverycontext "classifieds/internal/delivery/context"
	"classifieds/internal/delivery/middleware"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the bearer token of a request to its user.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate rejects the request unless its Authorization header carries a live token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.auth.ResolveBearer(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			code := domainerrors.ErrTokenInvalid.ErrorCode()
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				code = appErr.ErrorCode()
			}
			middleware.RecordAuthFailure(code)

			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}
