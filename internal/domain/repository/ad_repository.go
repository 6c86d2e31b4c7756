package repository

import (
	"context"
	"errors"

	"classifieds/internal/domain/entity"
)

// ErrAdNotFound is returned when no ad has the requested ID.
var ErrAdNotFound = errors.New("ad not found")

// AdUpdate holds the mutable fields of an ad. Nil fields are left untouched.
type AdUpdate struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the update changes nothing.
func (u AdUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil
}

// AdRepository defines persistence operations for ads.
type AdRepository interface {
	// Create persists a new ad and fills in its generated ID.
	Create(ctx context.Context, ad *entity.Ad) error

	// FindByID retrieves a single ad.
	FindByID(ctx context.Context, id int64) (*entity.Ad, error)

	// FindByIDForUpdate retrieves an ad and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Ad, error)

	// ListByAuthor returns the newest ads of an author first.
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*entity.Ad, error)

	// Update applies the given changes and returns the stored ad.
	Update(ctx context.Context, id int64, changes AdUpdate) (*entity.Ad, error)

	// Delete removes a single ad.
	Delete(ctx context.Context, id int64) error

	// DeleteByAuthor removes every ad of an author and returns how many were removed.
	DeleteByAuthor(ctx context.Context, authorID int64) (int64, error)
}
