package generator

import "strings"

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	DefaultSymbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// SimilarChars are glyphs easily confused with one another.
	SimilarChars = "il1Lo0O"
	// AmbiguousChars extends SimilarChars with look-alike letter/digit pairs.
	AmbiguousChars = "il1Lo0O2Z5S8B"
)

// Class is a character class.
type Class int

const (
	ClassLower Class = iota
	ClassUpper
	ClassDigit
	ClassSymbol
)

// Classes lists every class in generation order.
var Classes = [...]Class{ClassLower, ClassUpper, ClassDigit, ClassSymbol}

func (c Class) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	}
	return "unknown"
}

// CharsetOptions selects character classes and exclusion rules.
type CharsetOptions struct {
	Lower            bool
	Upper            bool
	Digits           bool
	Symbols          bool
	CustomSymbols    string
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

func (o CharsetOptions) selected(c Class) bool {
	switch c {
	case ClassLower:
		return o.Lower
	case ClassUpper:
		return o.Upper
	case ClassDigit:
		return o.Digits
	case ClassSymbol:
		return o.Symbols
	}
	return false
}

func (o CharsetOptions) source(c Class) string {
	switch c {
	case ClassLower:
		return LowercaseChars
	case ClassUpper:
		return UppercaseChars
	case ClassDigit:
		return DigitChars
	case ClassSymbol:
		if o.CustomSymbols == "" {
			return DefaultSymbols
		}
		return o.CustomSymbols
	}
	return ""
}

func (o CharsetOptions) excluded() string {
	if o.ExcludeAmbiguous {
		return AmbiguousChars
	}
	if o.ExcludeSimilar {
		return SimilarChars
	}
	return ""
}

// Charset is the usable alphabet plus the filtered alphabet of each selected class.
type Charset struct {
	Alphabet []rune
	classes  [len(Classes)][]rune
}

// Class returns the filtered characters of c, empty if c was not selected.
func (cs Charset) Class(c Class) []rune {
	if c < 0 || int(c) >= len(cs.classes) {
		return nil
	}
	return cs.classes[c]
}

// BuildCharset assembles the deduplicated alphabet for opts.
func BuildCharset(opts CharsetOptions) (Charset, error) {
	var cs Charset
	anySelected := false
	excluded := opts.excluded()
	seen := make(map[rune]bool)

	for _, c := range Classes {
		if !opts.selected(c) {
			continue
		}
		anySelected = true

		filtered := filterRunes(opts.source(c), excluded)
		cs.classes[c] = filtered
		for _, r := range filtered {
			if !seen[r] {
				seen[r] = true
				cs.Alphabet = append(cs.Alphabet, r)
			}
		}
	}

	if !anySelected {
		return Charset{}, ErrNoCharacterClassSelected
	}
	if len(cs.Alphabet) == 0 {
		return Charset{}, ErrEmptyAlphabetAfterExclusion
	}
	return cs, nil
}

// filterRunes drops excluded and repeated runes, keeping first occurrences in order.
func filterRunes(s, excluded string) []rune {
	out := make([]rune, 0, len(s))
	seen := make(map[rune]bool, len(s))
	for _, r := range s {
		if seen[r] || strings.ContainsRune(excluded, r) {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
