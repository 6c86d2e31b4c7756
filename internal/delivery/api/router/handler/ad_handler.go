package handler

import (
	"encoding/base64"
	"net/http"

	"classifieds/internal/delivery/api/response"
	"classifieds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdHandler serves ad reads and author-only mutations.
type AdHandler struct {
	adUC usecase.AdUsecase
}

// NewAdHandler is the constructor for AdHandler, injected by Fx.
func NewAdHandler(adUC usecase.AdUsecase) *AdHandler {
	return &AdHandler{adUC: adUC}
}

type createAdRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
}

type createAdResponse struct {
	AdID  int64  `json:"ad_id"`
	Title string `json:"title"`
}

type updateAdRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

type updateAdResponse struct {
	Message string     `json:"message"`
	Ad      AdResponse `json:"ad"`
}

type adQRCodeResponse struct {
	AdID      int64  `json:"ad_id"`
	URL       string `json:"url"`
	PNGBase64 string `json:"png_base64"`
}

// GetAd returns a single ad.
func (h *AdHandler) GetAd(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ad, err := h.adUC.GetAd(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdResponse(ad))
}

// AdQRCode returns a PNG share code for the ad's public URL.
func (h *AdHandler) AdQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.adUC.AdQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adQRCodeResponse{
		AdID:      out.AdID,
		URL:       out.URL,
		PNGBase64: base64.StdEncoding.EncodeToString(out.PNG),
	})
}

// CreateAd stores an ad authored by the caller.
func (h *AdHandler) CreateAd(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createAdRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ad, err := h.adUC.CreateAd(c.Request().Context(), user, usecase.CreateAdInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createAdResponse{AdID: ad.ID, Title: ad.Title})
}

// UpdateAd changes the title or description of an ad owned by the caller.
func (h *AdHandler) UpdateAd(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAdRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ad, err := h.adUC.UpdateAd(c.Request().Context(), user, id, usecase.UpdateAdInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updateAdResponse{Message: "Ad updated", Ad: toAdResponse(ad)})
}

// DeleteAd removes an ad owned by the caller.
func (h *AdHandler) DeleteAd(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.adUC.DeleteAd(c.Request().Context(), user, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Ad deleted"})
}
