package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
	mockUsecase "classifieds/internal/mocks/usecase"
	"classifieds/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockAuthUsecase, *mockUsecase.MockUserUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewUserHandler(authUC, userUC), authUC, userUC
}

func TestUserHandler_CreateUser(t *testing.T) {
	h, authUC, _ := newTestUserHandler(t)
	authUC.On("Register", mock.Anything, usecase.RegisterInput{Username: "alice", Email: "a@x", Password: "pw1"}).
		Return(&usecase.RegisterOutput{User: &entity.User{ID: 1, Username: "alice"}}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/v1/user-create/",
		body:   `{"username":"alice","email":"a@x","password":"pw1"}`,
	})

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var data createUserResponse
	decodeData(t, rec, &data)
	assert.Equal(t, int64(1), data.UserID)
}

func TestUserHandler_CreateUser_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing email", `{"username":"alice","password":"pw1"}`, domainerrors.ErrValidationFailed},
		{"username too long", `{"username":"` + strings.Repeat("a", 65) + `","email":"a@x","password":"p"}`, domainerrors.ErrValidationFailed},
		{"malformed json", `{"username":`, domainerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestUserHandler(t)
			c, _ := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/user-create/", body: tt.body})

			assert.ErrorIs(t, h.CreateUser(c), tt.want)
		})
	}
}

func TestUserHandler_CreateUser_Duplicate(t *testing.T) {
	h, authUC, _ := newTestUserHandler(t)
	authUC.On("Register", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	c, _ := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/v1/user-create/",
		body:   `{"username":"alice","email":"a@x","password":"pw1"}`,
	})

	assert.ErrorIs(t, h.CreateUser(c), domainerrors.ErrUserAlreadyExists)
}

func TestUserHandler_GetUser(t *testing.T) {
	h, _, userUC := newTestUserHandler(t)
	userUC.On("GetUser", mock.Anything, int64(1)).Return(&entity.User{ID: 1, Username: "alice", Email: "a@x"}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/user-info/1", id: "1"})

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "a@x")

	var data userResponse
	decodeData(t, rec, &data)
	assert.Equal(t, userResponse{ID: 1, Username: "alice"}, data)
}

func TestUserHandler_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		t.Run(id, func(t *testing.T) {
			h, _, _ := newTestUserHandler(t)
			c, _ := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/user-info/" + id, id: id})

			assert.ErrorIs(t, h.GetUser(c), domainerrors.ErrInvalidID)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	h, _, userUC := newTestUserHandler(t)
	userUC.On("DeleteUser", mock.Anything, int64(2)).Return(nil)
	userUC.On("DeleteUser", mock.Anything, int64(3)).Return(domainerrors.ErrUserNotFound)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/user-info/2/del", id: "2"})
	require.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/user-info/3/del", id: "3"})
	assert.ErrorIs(t, h.DeleteUser(c), domainerrors.ErrUserNotFound)
}

func TestUserHandler_ListUserAds(t *testing.T) {
	h, _, userUC := newTestUserHandler(t)
	date := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	userUC.On("ListUserAds", mock.Anything, usecase.ListUserAdsInput{UserID: 1, Limit: 5, Offset: 10}).
		Return([]*entity.Ad{{ID: 9, Title: "T", Description: "D", Date: date, AuthorID: 1}}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/user-info/1/ads?limit=5&offset=10", id: "1"})

	require.NoError(t, h.ListUserAds(c))

	var data userAdsResponse
	decodeData(t, rec, &data)
	require.Len(t, data.Ads, 1)
	assert.Equal(t, AdResponse{AdID: 9, Title: "T", Description: "D", Date: date, Author: 1}, data.Ads[0])
}

func TestUserHandler_ListUserAds_BadQuery(t *testing.T) {
	h, _, _ := newTestUserHandler(t)
	c, _ := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/user-info/1/ads?limit=many", id: "1"})

	assert.ErrorIs(t, h.ListUserAds(c), domainerrors.ErrValidationFailed)
}
