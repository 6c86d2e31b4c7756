package policy

import (
	"testing"

	"classifieds/internal/domain/entity"
	domainerrors "classifieds/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeMutation(t *testing.T) {
	author := &entity.User{ID: 1, Username: "alice"}
	stranger := &entity.User{ID: 2, Username: "bob"}
	ad := &entity.Ad{ID: 10, Title: "Bike", AuthorID: 1}

	tests := []struct {
		name    string
		user    *entity.User
		ad      *entity.Ad
		wantErr error
	}{
		{name: "author may mutate", user: author, ad: ad},
		{name: "other user is denied", user: stranger, ad: ad, wantErr: domainerrors.ErrAdOwnershipViolation},
		{name: "missing user is denied", user: nil, ad: ad, wantErr: domainerrors.ErrAdOwnershipViolation},
		{name: "missing ad is denied", user: author, ad: nil, wantErr: domainerrors.ErrAdOwnershipViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeMutation(tt.user, tt.ad)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
