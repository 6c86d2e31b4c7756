// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"classifieds/config"
	"classifieds/internal/domain/service"
)

// pepperedBcryptHasher keys the password with an HMAC over a process-wide pepper and
// stores the bcrypt digest of the result. bcrypt contributes the per-user salt.
type pepperedBcryptHasher struct {
	pepper []byte
	cost   int
}

// NewPasswordHasher is the constructor for the bcrypt-backed PasswordHasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg.SecretKey.PasswordPepper == "" {
		return nil, errors.New("password pepper must be provided")
	}

	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &pepperedBcryptHasher{
		pepper: []byte(cfg.SecretKey.PasswordPepper),
		cost:   cost,
	}, nil
}

// Hash generates a salted digest from a plaintext password.
func (h *pepperedBcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(h.keyed(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}

	return string(digest), nil
}

// Check compares a plaintext password with a stored digest.
func (h *pepperedBcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.keyed(password)) == nil
}

// keyed hex-encodes the HMAC so the bcrypt input stays under its 72 byte limit for any password length.
func (h *pepperedBcryptHasher) keyed(password string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))

	return []byte(hex.EncodeToString(mac.Sum(nil)))
}
