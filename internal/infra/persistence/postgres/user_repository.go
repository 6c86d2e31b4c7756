package postgres

import (
	"context"

	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/domain/repository"
	"classifieds/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and copies the generated ID and timestamp back onto the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "find user by id", "id = ?", id)
}

// FindByUsername retrieves a single user by their username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by username", "username = ?", username)
}

// FindByToken resolves the holder of a bearer token.
func (repo *userRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "find user by token", "token = ?", token)
}

// SetToken overwrites the stored token. The unique index on token rejects collisions.
func (repo *userRepository) SetToken(ctx context.Context, userID int64, token string) error {
	return repo.updateToken(ctx, userID, &token)
}

// ClearToken sets the stored token to NULL.
func (repo *userRepository) ClearToken(ctx context.Context, userID int64) error {
	return repo.updateToken(ctx, userID, nil)
}

// Delete removes the user. The ads foreign key cascades.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) findOne(ctx context.Context, op, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to "+op)
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) updateToken(ctx context.Context, userID int64, token *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("token", token)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "token collision")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain maps the persistence model to a domain entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.Password,
		Token:        data.Token,
		CreatedAt:    data.CreatedAt,
	}
}

// fromUserDomain maps a domain entity to the persistence model.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		Password:  data.PasswordHash,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
	}
}
