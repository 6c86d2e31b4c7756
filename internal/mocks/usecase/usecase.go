// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"classifieds/internal/domain/entity"
	"classifieds/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t TestingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockAuthUsecase is a mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t TestingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	register(t, &m.Mock)

	return m
}

var _ usecase.AuthUsecase = (*MockAuthUsecase)(nil)

func (m *MockAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.RegisterOutput)

	return out, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.LoginOutput)

	return out, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockAuthUsecase) ResolveBearer(ctx context.Context, authorization string) (*entity.User, error) {
	args := m.Called(ctx, authorization)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

// MockUserUsecase is a mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func NewMockUserUsecase(t TestingT) *MockUserUsecase {
	m := &MockUserUsecase{}
	register(t, &m.Mock)

	return m
}

var _ usecase.UserUsecase = (*MockUserUsecase)(nil)

func (m *MockUserUsecase) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserUsecase) ListUserAds(ctx context.Context, input usecase.ListUserAdsInput) ([]*entity.Ad, error) {
	args := m.Called(ctx, input)
	ads, _ := args.Get(0).([]*entity.Ad)

	return ads, args.Error(1)
}

// MockAdUsecase is a mock of usecase.AdUsecase.
type MockAdUsecase struct {
	mock.Mock
}

func NewMockAdUsecase(t TestingT) *MockAdUsecase {
	m := &MockAdUsecase{}
	register(t, &m.Mock)

	return m
}

var _ usecase.AdUsecase = (*MockAdUsecase)(nil)

func (m *MockAdUsecase) CreateAd(ctx context.Context, author *entity.User, input usecase.CreateAdInput) (*entity.Ad, error) {
	args := m.Called(ctx, author, input)
	ad, _ := args.Get(0).(*entity.Ad)

	return ad, args.Error(1)
}

func (m *MockAdUsecase) GetAd(ctx context.Context, id int64) (*entity.Ad, error) {
	args := m.Called(ctx, id)
	ad, _ := args.Get(0).(*entity.Ad)

	return ad, args.Error(1)
}

func (m *MockAdUsecase) UpdateAd(ctx context.Context, actor *entity.User, id int64, input usecase.UpdateAdInput) (*entity.Ad, error) {
	args := m.Called(ctx, actor, id, input)
	ad, _ := args.Get(0).(*entity.Ad)

	return ad, args.Error(1)
}

func (m *MockAdUsecase) DeleteAd(ctx context.Context, actor *entity.User, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockAdUsecase) AdQRCode(ctx context.Context, id int64) (*usecase.AdQRCodeOutput, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*usecase.AdQRCodeOutput)

	return out, args.Error(1)
}
