package handler

import (
	"net/http"

	"classifieds/internal/delivery/api/response"
	"classifieds/internal/delivery/middleware"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves login and logout.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			middleware.RecordAuthFailure(domainerrors.ErrInvalidCredentials.ErrorCode())
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{Token: output.Token})
}

// Logout revokes the caller's token.
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), user); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Logged out"})
}
