// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"classifieds/internal/domain/entity"
	"classifieds/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted at test cleanup.
func NewMockUserRepository(t TestingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) SetToken(ctx context.Context, userID int64, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *MockUserRepository) ClearToken(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockAdRepository is a mock of repository.AdRepository.
type MockAdRepository struct {
	mock.Mock
}

// NewMockAdRepository creates a mock whose expectations are asserted at test cleanup.
func NewMockAdRepository(t TestingT) *MockAdRepository {
	m := &MockAdRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.AdRepository = (*MockAdRepository)(nil)

func (m *MockAdRepository) Create(ctx context.Context, ad *entity.Ad) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *MockAdRepository) FindByID(ctx context.Context, id int64) (*entity.Ad, error) {
	args := m.Called(ctx, id)
	ad, _ := args.Get(0).(*entity.Ad)

	return ad, args.Error(1)
}

func (m *MockAdRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Ad, error) {
	args := m.Called(ctx, id)
	ad, _ := args.Get(0).(*entity.Ad)

	return ad, args.Error(1)
}

func (m *MockAdRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*entity.Ad, error) {
	args := m.Called(ctx, authorID, limit, offset)
	ads, _ := args.Get(0).([]*entity.Ad)

	return ads, args.Error(1)
}

func (m *MockAdRepository) Update(ctx context.Context, id int64, changes repository.AdUpdate) (*entity.Ad, error) {
	args := m.Called(ctx, id, changes)
	ad, _ := args.Get(0).(*entity.Ad)

	return ad, args.Error(1)
}

func (m *MockAdRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdRepository) DeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)

	return args.Get(0).(int64), args.Error(1)
}
