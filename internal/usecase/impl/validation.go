package impl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domainerrors "classifieds/internal/domain/errors"
)

// Column limits of the users and ads tables.
const (
	maxUsernameLength = 64
	maxEmailLength    = 120
	maxTitleLength    = 100
)

// requireFields takes name/value pairs and reports the first blank value.
func requireFields(nameValues ...string) error {
	for i := 0; i+1 < len(nameValues); i += 2 {
		if strings.TrimSpace(nameValues[i+1]) == "" {
			return domainerrors.ErrValidationFailed.WithDetails(nameValues[i] + " is required")
		}
	}

	return nil
}

func checkMaxLength(name, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s must be at most %d characters", name, limit))
	}

	return nil
}
