package generator

import (
	"fmt"
	"strings"

	"github.com/passforge/passforge/internal/wordlist"
)

// SafeSymbols are the symbols used by smart passwords regardless of any
// custom symbol configuration.
const SafeSymbols = "!@#$%^&*"

// smartPools gathers the adjective, noun and verb candidates. Nature words
// widen the adjectives with probability 3/10 and the verbs with 2/10; the
// extra noun categories are always included when present.
func (g *Generator) smartPools() (adjectives, nouns, verbs []string, err error) {
	if g.words == nil {
		return nil, nil, nil, ErrEmptyWordPool
	}
	for _, c := range []string{wordlist.Adjectives, wordlist.Nouns, wordlist.Verbs} {
		if !g.words.Has(c) {
			return nil, nil, nil, fmt.Errorf("%w: category %q", ErrEmptyWordPool, c)
		}
	}

	nature := g.words.Words(wordlist.Nature)

	adjectives = g.words.Words(wordlist.Adjectives)
	roll, err := g.intn(10)
	if err != nil {
		return nil, nil, nil, err
	}
	if roll < 3 {
		adjectives = append(append([]string(nil), adjectives...), nature...)
	}

	nouns = append(append(append(append([]string(nil),
		g.words.Words(wordlist.Nouns)...),
		g.words.Words(wordlist.Technology)...),
		g.words.Words(wordlist.Cosmic)...),
		g.words.Words(wordlist.Mythical)...)

	verbs = g.words.Words(wordlist.Verbs)
	if roll, err = g.intn(10); err != nil {
		return nil, nil, nil, err
	}
	if roll < 2 {
		verbs = append(append([]string(nil), verbs...), nature...)
	}

	return adjectives, nouns, verbs, nil
}

// Smart composes two capitalized words with a number and optional symbols,
// arranged in one of four layouts.
func (g *Generator) Smart(req SmartRequest) (string, error) {
	if !req.Complexity.valid() {
		return "", fmt.Errorf("%w: complexity %q", ErrInvalidOption, req.Complexity)
	}
	if !req.WordOrder.valid() {
		return "", fmt.Errorf("%w: word order %q", ErrInvalidOption, req.WordOrder)
	}

	adjectives, nouns, verbs, err := g.smartPools()
	if err != nil {
		return "", err
	}

	var adjective, noun, verb string
	if adjective, err = g.pickWord(adjectives); err != nil {
		return "", err
	}
	if noun, err = g.pickWord(nouns); err != nil {
		return "", err
	}
	if verb, err = g.pickWord(verbs); err != nil {
		return "", err
	}
	adjective, noun, verb = capitalize(adjective), capitalize(noun), capitalize(verb)

	var base string
	switch req.WordOrder {
	case OrderAdjectiveNoun:
		base = adjective + noun
	case OrderVerbNoun:
		base = verb + noun
	default:
		patterns := []string{adjective + noun, verb + noun, adjective + verb, noun + adjective}
		if base, err = g.pickWord(patterns); err != nil {
			return "", err
		}
	}

	digits, symbolCount := 3, 1
	switch req.Complexity {
	case ComplexitySimple:
		digits = 2
	case ComplexityComplex:
		digits = 4
		if req.IncludeSymbols {
			extra, err := g.intn(2)
			if err != nil {
				return "", err
			}
			symbolCount = 2 + extra
		}
	}

	num, err := g.number(digits)
	if err != nil {
		return "", err
	}

	var symbols strings.Builder
	if req.IncludeSymbols {
		safe := []rune(SafeSymbols)
		for iter := 0; iter < symbolCount; iter++ {
			s, err := g.pickRune(safe)
			if err != nil {
				return "", err
			}
			symbols.WriteRune(s)
		}
	}
	sym := symbols.String()

	arrangements := []string{
		base + num + sym,
		sym + base + num,
		num + base + sym,
		base + sym + num,
	}
	return g.pickWord(arrangements)
}
