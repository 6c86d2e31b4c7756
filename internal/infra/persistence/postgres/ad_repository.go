package postgres

import (
	"context"

	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/domain/repository"
	"classifieds/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adRepository implements repository.AdRepository using GORM.
type adRepository struct {
	db *gorm.DB
}

// NewAdRepository is the constructor for adRepository.
func NewAdRepository(db *gorm.DB) repository.AdRepository {
	return &adRepository{db: db}
}

// Create inserts the ad. A missing author surfaces as USER_NOT_FOUND.
func (repo *adRepository) Create(ctx context.Context, ad *entity.Ad) error {
	adM := fromAdDomain(ad)

	if err := repo.db.WithContext(ctx).Create(adM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("ad author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ad")
	}

	ad.ID = adM.ID
	ad.Date = adM.Date

	return nil
}

// FindByID retrieves a single ad.
func (repo *adRepository) FindByID(ctx context.Context, id int64) (*entity.Ad, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an ad with SELECT ... FOR UPDATE. Only meaningful inside a transaction.
func (repo *adRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Ad, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

// ListByAuthor returns an author's ads, newest first.
func (repo *adRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*entity.Ad, error) {
	var adMs []model.AdModel
	err := repo.db.WithContext(ctx).
		Where("author = ?", authorID).
		Order("date DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&adMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ads")
	}

	ads := make([]*entity.Ad, 0, len(adMs))
	for i := range adMs {
		ads = append(ads, toAdDomain(&adMs[i]))
	}

	return ads, nil
}

// Update writes only the provided fields and returns the stored row.
func (repo *adRepository) Update(ctx context.Context, id int64, changes repository.AdUpdate) (*entity.Ad, error) {
	if !changes.IsEmpty() {
		fields := make(map[string]any, 2)
		if changes.Title != nil {
			fields["title"] = *changes.Title
		}
		if changes.Description != nil {
			fields["description"] = *changes.Description
		}

		result := repo.db.WithContext(ctx).Model(&model.AdModel{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ad")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrAdNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a single ad.
func (repo *adRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AdModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ad")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdNotFound
	}

	return nil
}

// DeleteByAuthor removes every ad of an author.
func (repo *adRepository) DeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("author = ?", authorID).Delete(&model.AdModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ads of author")
	}

	return result.RowsAffected, nil
}

func (repo *adRepository) find(db *gorm.DB, id int64) (*entity.Ad, error) {
	var adM model.AdModel
	if err := db.Where("id = ?", id).Take(&adM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find ad")
	}

	return toAdDomain(&adM), nil
}

func toAdDomain(data *model.AdModel) *entity.Ad {
	if data == nil {
		return nil
	}

	return &entity.Ad{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		AuthorID:    data.Author,
	}
}

func fromAdDomain(data *entity.Ad) *model.AdModel {
	if data == nil {
		return nil
	}

	return &model.AdModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Author:      data.AuthorID,
	}
}
