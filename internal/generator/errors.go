package generator

import (
	"errors"

	"github.com/passforge/passforge/internal/random"
)

var (
	ErrNoCharacterClassSelected    = errors.New("at least one character class must be selected")
	ErrEmptyAlphabetAfterExclusion = errors.New("no characters left after exclusions")
	ErrNoAvailableDigits           = errors.New("every digit is excluded")
	ErrConstraintUnsatisfiable     = errors.New("no pin satisfied the constraints within the retry limit")
	ErrInvalidLength               = errors.New("password length out of range")
	ErrInvalidWordCount            = errors.New("word count out of range")
	ErrInvalidOption               = errors.New("invalid generator option")
	ErrEmptyWordPool               = errors.New("word pool is missing required words")

	// ErrEntropyUnavailable is returned when the secure random source fails.
	ErrEntropyUnavailable = random.ErrEntropyUnavailable
)

// IsValidation reports whether err was caused by the request rather than the environment.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoCharacterClassSelected) ||
		errors.Is(err, ErrEmptyAlphabetAfterExclusion) ||
		errors.Is(err, ErrNoAvailableDigits) ||
		errors.Is(err, ErrConstraintUnsatisfiable) ||
		errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, ErrInvalidWordCount) ||
		errors.Is(err, ErrInvalidOption)
}
