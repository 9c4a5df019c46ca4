package kernel

import (
	"unicode/utf8"

	"taxi/internal/pkg/errs"
)

// Column limits of the free-text attributes.
const (
	NameMaxLength    = 25
	CarMaxLength     = 25
	AddressMaxLength = 50
)

// ValidateText checks that value is non-empty and at most maxLength characters long.
func ValidateText(param, value string, maxLength int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}

	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 1, maxLength)
	}

	return nil
}
