// Package generator produces passwords under the uniform, PIN, memorable and
// smart policies. Every random decision is drawn from the injected
// random.Source, so a deterministic source yields reproducible output.
package generator

import (
	"fmt"

	"github.com/passforge/passforge/internal/random"
	"github.com/passforge/passforge/internal/wordlist"
)

// Generator holds the caller-owned randomness source and word pool. It keeps
// no state between calls and is safe for concurrent use when its Source is.
type Generator struct {
	src   random.Source
	words *wordlist.Pool
}

// New creates a Generator. A nil pool disables the word-based policies.
func New(src random.Source, words *wordlist.Pool) *Generator {
	return &Generator{src: src, words: words}
}

// Generate dispatches req to the generator for its policy.
func (g *Generator) Generate(req Request) (string, error) {
	switch r := req.(type) {
	case UniformRequest:
		return g.Uniform(r)
	case PinRequest:
		return g.Pin(r)
	case MemorableRequest:
		return g.Memorable(r)
	case SmartRequest:
		return g.Smart(r)
	case nil:
		return "", fmt.Errorf("%w: nil request", ErrInvalidOption)
	}
	return "", fmt.Errorf("%w: unsupported request %T", ErrInvalidOption, req)
}

func (g *Generator) intn(n int) (int, error) {
	return g.src.NextBelow(n)
}

func (g *Generator) coin() (bool, error) {
	v, err := g.src.NextBelow(2)
	return v == 0, err
}

func (g *Generator) pickRune(set []rune) (rune, error) {
	i, err := g.src.NextBelow(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func (g *Generator) pickWord(words []string) (string, error) {
	i, err := g.src.NextBelow(len(words))
	if err != nil {
		return "", err
	}
	return words[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by the source.
func (g *Generator) shuffle(buf []rune) error {
	for i := len(buf) - 1; i > 0; i-- {
		j, err := g.src.NextBelow(i + 1)
		if err != nil {
			return err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}

// number formats a zero-padded random number with the given digit count.
func (g *Generator) number(digits int) (string, error) {
	limit := 1
	for iter := 0; iter < digits; iter++ {
		limit *= 10
	}
	n, err := g.src.NextBelow(limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
