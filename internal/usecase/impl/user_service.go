package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "classifieds/internal/delivery/context"
	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/domain/repository"
	"classifieds/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	adRepo    repository.AdRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	AdRepo    repository.AdRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		adRepo:    params.AdRepo,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser returns the user or USER_NOT_FOUND.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, userLookupError(err)
	}

	return user, nil
}

// DeleteUser removes the user's ads and then the user, atomically.
func (srv *userService) DeleteUser(ctx context.Context, id int64) error {
	var removedAds int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			return userLookupError(err)
		}

		var err error
		removedAds, err = repoFactory.NewAdRepository().DeleteByAuthor(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete ads of user")
		}

		if err := userRepo.Delete(ctx, id); err != nil {
			return userLookupError(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete user", slog.Int64("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id), slog.Int64("removedAds", removedAds))

	return nil
}

// ListUserAds returns a page of the user's ads, newest first.
func (srv *userService) ListUserAds(ctx context.Context, input usecase.ListUserAdsInput) ([]*entity.Ad, error) {
	if input.Offset < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offset must not be negative")
	}
	if input.Limit < 0 || input.Limit > usecase.MaxListLimit {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("limit must be between 1 and %d", usecase.MaxListLimit))
	}
	limit := input.Limit
	if limit == 0 {
		limit = usecase.DefaultListLimit
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, userLookupError(err)
	}

	ads, err := srv.adRepo.ListByAuthor(ctx, input.UserID, limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	return ads, nil
}

// userLookupError maps the repository miss onto the HTTP-facing error and wraps anything else.
func userLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to load user")
}
