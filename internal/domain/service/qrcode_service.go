package service

// QRCodeService renders QR codes.
type QRCodeService interface {
	// GenerateAdQR encodes the public URL of an ad as a PNG image.
	GenerateAdQR(adURL string) ([]byte, error)

	// AdURL builds the public URL of an ad.
	AdURL(adID int64) string
}
