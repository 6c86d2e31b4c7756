// Package policy holds authorization rules that span more than one entity.
package policy

import (
	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"
)

// AuthorizeMutation allows a user to modify or delete an ad only when they authored it.
func AuthorizeMutation(user *entity.User, ad *entity.Ad) error {
	if user == nil || ad == nil || !ad.IsOwnedBy(user.ID) {
		return domainerrors.ErrAdOwnershipViolation
	}

	return nil
}
