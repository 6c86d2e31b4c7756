package usecase

import (
	"context"

	"classifieds/internal/domain/entity"
)

// Paging bounds for listing a user's ads.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListUserAdsInput selects a page of a user's ads. A zero Limit means DefaultListLimit.
type ListUserAdsInput struct {
	UserID int64
	Limit  int
	Offset int
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// DeleteUser removes the user together with all of their ads.
	DeleteUser(ctx context.Context, id int64) error

	ListUserAds(ctx context.Context, input ListUserAdsInput) ([]*entity.Ad, error)
}
