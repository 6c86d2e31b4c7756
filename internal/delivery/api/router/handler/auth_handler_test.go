package handler

import (
	"net/http"
	"testing"

	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
	mockUsecase "classifieds/internal/mocks/usecase"
	"classifieds/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.On("Login", mock.Anything, usecase.LoginInput{Username: "alice", Password: "pw1"}).
		Return(&usecase.LoginOutput{Token: "tok", User: &entity.User{ID: 1}}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/v1/auth/login",
		body:   `{"username":"alice","password":"pw1"}`,
	})

	require.NoError(t, NewAuthHandler(authUC).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data loginResponse
	decodeData(t, rec, &data)
	assert.Equal(t, "tok", data.Token)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	t.Run("wrong credentials", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		c, _ := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/auth/login",
			body:   `{"username":"alice","password":"nope"}`,
		})

		assert.ErrorIs(t, NewAuthHandler(authUC).Login(c), domainerrors.ErrInvalidCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)

		c, _ := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/auth/login",
			body:   `{"username":"alice"}`,
		})

		assert.ErrorIs(t, NewAuthHandler(authUC).Login(c), domainerrors.ErrValidationFailed)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	user := &entity.User{ID: 1}
	authUC.On("Logout", mock.Anything, user).Return(nil)

	c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/auth/logout", user: user})

	require.NoError(t, NewAuthHandler(authUC).Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Logout_WithoutUser(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	c, _ := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/auth/logout"})

	assert.ErrorIs(t, NewAuthHandler(authUC).Logout(c), domainerrors.ErrAuthHeaderInvalid)
}
