package handler

import (
	"strconv"
	"time"

	deliverycontext "classifieds/internal/delivery/context"
	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object")
	}

	return errors.WithStack(c.Validate(req))
}

// currentUser returns the user stored by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrAuthHeaderInvalid
	}

	return user, nil
}

// AdResponse is the public representation of an ad.
type AdResponse struct {
	AdID        int64     `json:"ad_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Author      int64     `json:"author"`
}

func toAdResponse(ad *entity.Ad) AdResponse {
	return AdResponse{
		AdID:        ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Date:        ad.Date,
		Author:      ad.AuthorID,
	}
}
