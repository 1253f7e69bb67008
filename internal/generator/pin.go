package generator

import (
	"fmt"
	"strings"
)

const (
	pinMaxAttempts      = 50
	pinMaxDigitAttempts = 20
)

// digitSequences is the canonical table of four digit ascending and
// descending runs.
var digitSequences = [...]string{
	"0123", "1234", "2345", "3456", "4567", "5678", "6789",
	"9876", "8765", "7654", "6543", "5432", "4321", "3210",
}

// ContainsDigitSequence reports whether s contains a canonical four digit run.
func ContainsDigitSequence(s string) bool {
	for _, seq := range digitSequences {
		if strings.Contains(s, seq) {
			return true
		}
	}
	return false
}

// hasAscendingRun reports whether s holds three consecutive digits each one
// greater than the last, such as 123 in 1235.
func hasAscendingRun(s []byte) bool {
	for i := 2; i < len(s); i++ {
		if s[i-2]+1 == s[i-1] && s[i-1]+1 == s[i] {
			return true
		}
	}
	return false
}

func hasAdjacentRepeat(s []byte) bool {
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			return true
		}
	}
	return false
}

func (r PinRequest) availableDigits() ([]byte, error) {
	for _, ch := range r.ExcludeDigits {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w: %q is not a digit", ErrInvalidOption, ch)
		}
	}

	digits := make([]byte, 0, len(DigitChars))
	for i := 0; i < len(DigitChars); i++ {
		if !strings.ContainsRune(r.ExcludeDigits, rune(DigitChars[i])) {
			digits = append(digits, DigitChars[i])
		}
	}
	if len(digits) > 0 {
		return digits, nil
	}
	if r.Strict {
		return nil, ErrNoAvailableDigits
	}
	return []byte(DigitChars), nil
}

func (r PinRequest) compliant(pin []byte) bool {
	if r.NoRepeats && hasAdjacentRepeat(pin) {
		return false
	}
	if r.NoSequence && (ContainsDigitSequence(string(pin)) || hasAscendingRun(pin)) {
		return false
	}
	return true
}

// Pin builds a numeric PIN. Candidates violating the repeat or sequence
// constraints are discarded and rebuilt up to 50 times. When every attempt
// fails the last candidate is returned, unless req.Strict is set, in which
// case ErrConstraintUnsatisfiable is returned instead. Excluding all ten
// digits falls back to the full digit set outside strict mode.
func (g *Generator) Pin(req PinRequest) (string, error) {
	if req.Length < MinPinLength || req.Length > MaxPinLength {
		return "", fmt.Errorf("%w: pin length %d not in [%d, %d]",
			ErrInvalidLength, req.Length, MinPinLength, MaxPinLength)
	}

	digits, err := req.availableDigits()
	if err != nil {
		return "", err
	}

	var pin []byte
	for iter := 0; iter < pinMaxAttempts; iter++ {
		pin = make([]byte, 0, req.Length)
		for i := 0; i < req.Length; i++ {
			d, err := g.pickDigit(digits)
			if err != nil {
				return "", err
			}
			// A single available digit cannot avoid repeating itself.
			if req.NoRepeats && i > 0 && len(digits) > 1 {
				for tries := 1; tries < pinMaxDigitAttempts && d == pin[i-1]; tries++ {
					if d, err = g.pickDigit(digits); err != nil {
						return "", err
					}
				}
			}
			pin = append(pin, d)
		}

		if req.compliant(pin) {
			return string(pin), nil
		}
	}

	if req.Strict {
		return "", ErrConstraintUnsatisfiable
	}
	return string(pin), nil
}

func (g *Generator) pickDigit(digits []byte) (byte, error) {
	i, err := g.src.NextBelow(len(digits))
	if err != nil {
		return 0, err
	}
	return digits[i], nil
}
