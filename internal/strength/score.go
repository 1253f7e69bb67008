// Package strength scores generated passwords on a 0-100 scale. The score is
// a heuristic tuned per policy: a PIN of a given length is weaker than a
// uniform password of the same length, so each policy has its own cap.
package strength

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/passforge/passforge/internal/generator"
)

var (
	commonPatterns = []string{"123", "abc", "qwe"}
	smartShape     = regexp.MustCompile(`[A-Z][a-z]+[A-Z][a-z]+\d+[!@#$%^&*]`)
)

type lengthScale struct {
	perChar int
	cap     int
}

var scales = map[generator.Type]lengthScale{
	generator.TypePin:       {perChar: 8, cap: 40},
	generator.TypeMemorable: {perChar: 3, cap: 60},
	generator.TypeSmart:     {perChar: 4, cap: 70},
	generator.TypeUniform:   {perChar: 5, cap: 80},
}

// Score rates password as a member of policy t. Unknown policies are scored
// as uniform. The empty password scores 0.
func Score(password string, t generator.Type) int {
	if password == "" {
		return 0
	}

	length := utf8.RuneCountInString(password)
	scale, ok := scales[t]
	if !ok {
		scale = scales[generator.TypeUniform]
	}

	score := min(length*scale.perChar, scale.cap)
	score += 5 * classCount(password)

	if length >= 12 {
		score += 10
	}
	if length >= 16 {
		score += 10
	}
	if length >= 20 {
		score += 5
	}

	if longestRun(password, nil) >= 3 {
		score -= 10
	}
	lower := strings.ToLower(password)
	for _, p := range commonPatterns {
		if strings.Contains(lower, p) {
			score -= 5
			break
		}
	}

	switch t {
	case generator.TypeSmart:
		if smartShape.MatchString(password) {
			score += 15
		}
	case generator.TypeMemorable:
		if strings.ContainsAny(password, "-_") {
			score += 10
		}
	case generator.TypePin:
		if longestRun(password, isDigit) >= 3 {
			score -= 15
		}
		if generator.ContainsDigitSequence(password) {
			score -= 20
		}
	}

	return max(0, min(100, score))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func classCount(s string) int {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case isDigit(r):
			digit = true
		case strings.ContainsRune(generator.DefaultSymbols, r):
			symbol = true
		}
	}

	n := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			n++
		}
	}
	return n
}

// longestRun returns the length of the longest run of identical adjacent
// runes, counting only runes accepted by keep when it is non-nil.
func longestRun(s string, keep func(rune) bool) int {
	longest, run := 0, 0
	var prev rune
	for i, r := range []rune(s) {
		if keep != nil && !keep(r) {
			run = 0
			continue
		}
		if i > 0 && run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		longest = max(longest, run)
	}
	return longest
}
