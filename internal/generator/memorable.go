package generator

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// capitalize upper-cases the first rune of w.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// Memorable joins req.WordCount words from the pool with req.Separator and
// optionally adds a two digit number.
func (g *Generator) Memorable(req MemorableRequest) (string, error) {
	if req.WordCount < MinWordCount || req.WordCount > MaxWordCount {
		return "", fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidWordCount, req.WordCount, MinWordCount, MaxWordCount)
	}
	if !req.Capitalization.valid() {
		return "", fmt.Errorf("%w: capitalization %q", ErrInvalidOption, req.Capitalization)
	}
	if req.IncludeNumbers && !req.NumberPosition.valid() {
		return "", fmt.Errorf("%w: number position %q", ErrInvalidOption, req.NumberPosition)
	}
	if g.words == nil || len(g.words.All()) == 0 {
		return "", ErrEmptyWordPool
	}

	words, err := g.drawWords(req.WordCount)
	if err != nil {
		return "", err
	}

	for i, w := range words {
		switch req.Capitalization {
		case CapitalizeFirst:
			if i == 0 {
				words[i] = capitalize(w)
			}
		case CapitalizeAll:
			words[i] = capitalize(w)
		case CapitalizeRandom:
			heads, err := g.coin()
			if err != nil {
				return "", err
			}
			if heads {
				words[i] = capitalize(w)
			}
		}
	}

	if !req.IncludeNumbers {
		return strings.Join(words, req.Separator), nil
	}

	num, err := g.number(2)
	if err != nil {
		return "", err
	}

	switch req.NumberPosition {
	case NumberBetween:
		// Interior join points only: never before the first or after the last word.
		at, err := g.intn(len(words) - 1)
		if err != nil {
			return "", err
		}
		words = slices.Insert(words, at+1, num)
	case NumberAtRandom:
		front, err := g.coin()
		if err != nil {
			return "", err
		}
		if front {
			words = slices.Insert(words, 0, num)
		} else {
			words = append(words, num)
		}
	default:
		words = append(words, num)
	}

	return strings.Join(words, req.Separator), nil
}

// drawWords picks n words. Each of the first len(categories) draws has a one
// in three chance of coming from a single randomly chosen category instead of
// the combined pool, which varies the theme without affecting uniformity of
// the individual draws.
func (g *Generator) drawWords(n int) ([]string, error) {
	categories := g.words.Categories()
	all := g.words.All()

	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pool := all
		if i < len(categories) {
			roll, err := g.intn(3)
			if err != nil {
				return nil, err
			}
			if roll == 0 {
				c, err := g.intn(len(categories))
				if err != nil {
					return nil, err
				}
				pool = g.words.Words(categories[c])
			}
		}

		w, err := g.pickWord(pool)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}
