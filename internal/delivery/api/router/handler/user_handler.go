// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"classifieds/internal/delivery/api/response"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	authUC usecase.AuthUsecase
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(authUC usecase.AuthUsecase, userUC usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		authUC: authUC,
		userUC: userUC,
	}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,max=120"`
	Password string `json:"password" validate:"required"`
}

type createUserResponse struct {
	UserID int64 `json:"user_id"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type userAdsResponse struct {
	Ads []AdResponse `json:"ads"`
}

// CreateUser handles the registration request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createUserResponse{UserID: output.User.ID})
}

// GetUser returns the public fields of a user.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

// DeleteUser removes a user together with their ads.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "User deleted"})
}

// ListUserAds returns a page of the user's ads, newest first.
func (h *UserHandler) ListUserAds(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	input := usecase.ListUserAdsInput{UserID: id}
	if err := echo.QueryParamsBinder(c).
		Int("limit", &input.Limit).
		Int("offset", &input.Offset).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}

	ads, err := h.userUC.ListUserAds(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	out := userAdsResponse{Ads: make([]AdResponse, 0, len(ads))}
	for _, ad := range ads {
		out.Ads = append(out.Ads, toAdResponse(ad))
	}

	return response.Success(c, http.StatusOK, out)
}
