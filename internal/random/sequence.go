package random

import "sync"

// Sequence is a deterministic Source that replays a fixed list of values,
// reducing each modulo the requested bound. It wraps around when exhausted.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewSequence returns a Sequence over values. An empty list always yields 0.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) NextBelow(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0, nil
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n, nil
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}
