package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "classifieds/internal/delivery/context"
	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
	"classifieds/internal/domain/policy"
	"classifieds/internal/domain/repository"
	"classifieds/internal/domain/service"
	"classifieds/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const eventPublishTimeout = 5 * time.Second

// adService implements the AdUsecase interface.
type adService struct {
	txManager repository.TransactionManager
	adRepo    repository.AdRepository
	publisher service.EventPublisher
	qrCodes   service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// AdServiceParams holds dependencies for AdService, injected by Fx.
type AdServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdRepo    repository.AdRepository
	Publisher service.EventPublisher
	QRCodes   service.QRCodeService
	Logger    *slog.Logger
}

// NewAdService is the constructor for adService.
func NewAdService(params AdServiceParams) usecase.AdUsecase {
	return &adService{
		txManager: params.TxManager,
		adRepo:    params.AdRepo,
		publisher: params.Publisher,
		qrCodes:   params.QRCodes,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *adService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAd stores a new ad authored by the given user.
func (srv *adService) CreateAd(ctx context.Context, author *entity.User, input usecase.CreateAdInput) (*entity.Ad, error) {
	if err := requireFields("title", input.Title, "description", input.Description); err != nil {
		return nil, err
	}
	if err := checkMaxLength("title", input.Title, maxTitleLength); err != nil {
		return nil, err
	}

	ad := &entity.Ad{
		Title:       input.Title,
		Description: input.Description,
		Date:        srv.now().UTC(),
		AuthorID:    author.ID,
	}
	if err := srv.adRepo.Create(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create ad")
	}

	srv.log(ctx).Info("Ad created", slog.Int64("adID", ad.ID), slog.Int64("authorID", ad.AuthorID))
	srv.publish(ctx, entity.AdEventCreated, ad)

	return ad, nil
}

// GetAd returns the ad or AD_NOT_FOUND.
func (srv *adService) GetAd(ctx context.Context, id int64) (*entity.Ad, error) {
	ad, err := srv.adRepo.FindByID(ctx, id)
	if err != nil {
		return nil, adLookupError(err)
	}

	return ad, nil
}

// UpdateAd locks the ad row, checks ownership and applies the changes in one transaction,
// so ownership cannot change between the check and the write.
func (srv *adService) UpdateAd(ctx context.Context, actor *entity.User, id int64, input usecase.UpdateAdInput) (*entity.Ad, error) {
	changes := repository.AdUpdate{Title: input.Title, Description: input.Description}
	if changes.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title or description is required")
	}
	if changes.Title != nil {
		if err := requireFields("title", *changes.Title); err != nil {
			return nil, err
		}
		if err := checkMaxLength("title", *changes.Title, maxTitleLength); err != nil {
			return nil, err
		}
	}
	if changes.Description != nil {
		if err := requireFields("description", *changes.Description); err != nil {
			return nil, err
		}
	}

	var updated *entity.Ad
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adRepo := repoFactory.NewAdRepository()

		if _, err := lockOwnedAd(ctx, adRepo, actor, id); err != nil {
			return err
		}

		var err error
		updated, err = adRepo.Update(ctx, id, changes)
		if err != nil {
			return adLookupError(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Ad update rejected", slog.Int64("adID", id), slog.Int64("userID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update ad")
	}

	srv.publish(ctx, entity.AdEventUpdated, updated)

	return updated, nil
}

// DeleteAd removes an ad owned by actor, under the same lock as UpdateAd.
func (srv *adService) DeleteAd(ctx context.Context, actor *entity.User, id int64) error {
	var deleted *entity.Ad
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adRepo := repoFactory.NewAdRepository()

		ad, err := lockOwnedAd(ctx, adRepo, actor, id)
		if err != nil {
			return err
		}
		if err := adRepo.Delete(ctx, id); err != nil {
			return adLookupError(err)
		}
		deleted = ad

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Ad delete rejected", slog.Int64("adID", id), slog.Int64("userID", actor.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete ad")
	}

	srv.log(ctx).Info("Ad deleted", slog.Int64("adID", id))
	srv.publish(ctx, entity.AdEventDeleted, deleted)

	return nil
}

// AdQRCode renders a QR code for the ad's public URL.
func (srv *adService) AdQRCode(ctx context.Context, id int64) (*usecase.AdQRCodeOutput, error) {
	if _, err := srv.GetAd(ctx, id); err != nil {
		return nil, err
	}

	url := srv.qrCodes.AdURL(id)
	png, err := srv.qrCodes.GenerateAdQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return &usecase.AdQRCodeOutput{AdID: id, URL: url, PNG: png}, nil
}

// lockOwnedAd row-locks the ad and applies the ownership guard.
func lockOwnedAd(ctx context.Context, adRepo repository.AdRepository, actor *entity.User, id int64) (*entity.Ad, error) {
	ad, err := adRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, adLookupError(err)
	}
	if err := policy.AuthorizeMutation(actor, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// publish announces a committed change. Failures are logged and never reach the caller.
func (srv *adService) publish(ctx context.Context, eventType entity.AdEventType, ad *entity.Ad) {
	event := &entity.AdEvent{
		Type:       eventType,
		AdID:       ad.ID,
		AuthorID:   ad.AuthorID,
		Title:      ad.Title,
		OccurredAt: srv.now().UTC(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	if err := srv.publisher.PublishAdEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish ad event",
			slog.String("type", string(eventType)),
			slog.Int64("adID", ad.ID),
			slog.Any("error", err),
		)
	}
}

func adLookupError(err error) error {
	if errors.Is(err, repository.ErrAdNotFound) {
		return domainerrors.ErrAdNotFound
	}

	return errors.Wrap(err, "failed to load ad")
}
