// Package qrcode renders share codes for ads.
package qrcode

import (
	"strconv"
	"strings"

	"classifieds/config"
	"classifieds/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	adInfoPathBase = "/api/v1/ad-info/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

// GenerateAdQR encodes adURL as a square PNG of the configured size.
func (s *qrcodeService) GenerateAdQR(adURL string) ([]byte, error) {
	if adURL == "" {
		return nil, errors.New("ad URL is empty")
	}

	pngBytes, err := qrcode.Encode(adURL, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// AdURL returns the public info URL of an ad. Without a base URL the path is relative.
func (s *qrcodeService) AdURL(adID int64) string {
	return s.baseURL + adInfoPathBase + strconv.FormatInt(adID, 10)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
