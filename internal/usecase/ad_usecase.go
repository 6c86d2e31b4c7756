package usecase

import (
	"context"

	"classifieds/internal/domain/entity"
)

// CreateAdInput holds the fields of a new ad. Both are required.
type CreateAdInput struct {
	Title       string
	Description string
}

// UpdateAdInput holds the fields to change. At least one must be set.
type UpdateAdInput struct {
	Title       *string
	Description *string
}

// AdQRCodeOutput is a rendered share code.
type AdQRCodeOutput struct {
	AdID int64
	URL  string
	PNG  []byte
}

// AdUsecase defines ad operations. Mutations require the acting user to be the author.
type AdUsecase interface {
	CreateAd(ctx context.Context, author *entity.User, input CreateAdInput) (*entity.Ad, error)
	GetAd(ctx context.Context, id int64) (*entity.Ad, error)
	UpdateAd(ctx context.Context, actor *entity.User, id int64, input UpdateAdInput) (*entity.Ad, error)
	DeleteAd(ctx context.Context, actor *entity.User, id int64) error
	AdQRCode(ctx context.Context, id int64) (*AdQRCodeOutput, error)
}
