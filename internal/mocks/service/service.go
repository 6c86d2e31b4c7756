// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	"classifieds/internal/domain/entity"
	"classifieds/internal/domain/service"

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

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t TestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	register(t, &m.Mock)

	return m
}

var _ service.PasswordHasher = (*MockPasswordHasher)(nil)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t TestingT) *MockTokenService {
	m := &MockTokenService{}
	register(t, &m.Mock)

	return m
}

var _ service.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) Issue(userID int64) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*service.Claims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) ExpiryEnforced() bool {
	return m.Called().Bool(0)
}

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t TestingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	register(t, &m.Mock)

	return m
}

var _ service.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishAdEvent(ctx context.Context, event *entity.AdEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockQRCodeService is a mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func NewMockQRCodeService(t TestingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	register(t, &m.Mock)

	return m
}

var _ service.QRCodeService = (*MockQRCodeService)(nil)

func (m *MockQRCodeService) GenerateAdQR(adURL string) ([]byte, error) {
	args := m.Called(adURL)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

func (m *MockQRCodeService) AdURL(adID int64) string {
	return m.Called(adID).String(0)
}
