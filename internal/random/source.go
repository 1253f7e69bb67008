package random

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	ErrEntropyUnavailable = errors.New("secure random source unavailable")
	ErrInvalidBound       = errors.New("random bound must be positive")
)

// Source yields uniformly distributed integers in [0, n).
// Implementations must be safe for concurrent use or owned by a single caller.
type Source interface {
	NextBelow(n int) (int, error)
}

// CryptoSource draws 32-bit values from a cryptographically secure reader.
// Each draw is an independent read, so a single CryptoSource can be shared.
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{reader: rand.Reader}
}

// NewCryptoSourceFrom wraps an arbitrary reader. Intended for failure injection in tests.
func NewCryptoSourceFrom(r io.Reader) *CryptoSource {
	return &CryptoSource{reader: r}
}

// NextBelow returns a value in [0, n). Values from the top partial bucket of
// the 32-bit range are rejected so the reduction stays unbiased.
func (s *CryptoSource) NextBelow(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	if uint64(n) > 1<<32 {
		return 0, fmt.Errorf("%w: %d exceeds 32-bit range", ErrInvalidBound, n)
	}

	bound := uint64(n)
	limit := (1 << 32) - (1<<32)%bound

	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.reader, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		v := uint64(binary.BigEndian.Uint32(buf[:]))
		if v < limit {
			return int(v % bound), nil
		}
	}
}
