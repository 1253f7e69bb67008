package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge/internal/random"
	"github.com/passforge/passforge/internal/wordlist"
)

func testPool(t *testing.T) *wordlist.Pool {
	t.Helper()
	p, err := wordlist.New(
		[]string{wordlist.Adjectives, wordlist.Nouns, wordlist.Verbs},
		map[string][]string{
			wordlist.Adjectives: {"brave", "calm"},
			wordlist.Nouns:      {"lion", "river"},
			wordlist.Verbs:      {"run", "soar"},
		},
	)
	require.NoError(t, err)
	return p
}

func TestMemorable_Scenario(t *testing.T) {
	g := New(random.NewCryptoSource(), testPool(t))
	req := MemorableRequest{
		WordCount:      2,
		Separator:      "-",
		Capitalization: CapitalizeFirst,
		IncludeNumbers: true,
		NumberPosition: NumberAtEnd,
	}

	for iter := 0; iter < 50; iter++ {
		pw, err := g.Memorable(req)
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z][a-z]+-[a-z]+-\d{2}$`, pw)
	}
}

func TestMemorable_Deterministic(t *testing.T) {
	p, err := wordlist.New([]string{"x"}, map[string][]string{"x": {"one", "two", "three"}})
	require.NoError(t, err)

	// roll 1 keeps the combined pool, then words 2 and 0, then number 42.
	g := New(random.NewSequence(1, 2, 0, 42), p)
	pw, err := g.Memorable(DefaultMemorable().withWords(2))
	require.NoError(t, err)
	assert.Equal(t, "Three-one-42", pw)
}

func TestMemorable_WordCount(t *testing.T) {
	g := New(random.NewCryptoSource(), testPool(t))

	for n := MinWordCount; n <= MaxWordCount; n++ {
		req := MemorableRequest{WordCount: n, Separator: ".", Capitalization: CapitalizeNone}
		pw, err := g.Memorable(req)
		require.NoError(t, err)
		assert.Len(t, strings.Split(pw, "."), n)
		assert.Equal(t, strings.ToLower(pw), pw)
	}

	for _, n := range []int{0, 1, 7} {
		_, err := g.Memorable(MemorableRequest{WordCount: n, Capitalization: CapitalizeNone})
		assert.ErrorIs(t, err, ErrInvalidWordCount)
	}
}

func TestMemorable_Capitalization(t *testing.T) {
	g := New(random.NewCryptoSource(), testPool(t))

	pw, err := g.Memorable(MemorableRequest{WordCount: 4, Separator: " ", Capitalization: CapitalizeAll})
	require.NoError(t, err)
	for _, w := range strings.Fields(pw) {
		assert.Regexp(t, `^[A-Z][a-z]+$`, w)
	}

	pw, err = g.Memorable(MemorableRequest{WordCount: 4, Separator: " ", Capitalization: CapitalizeRandom})
	require.NoError(t, err)
	for _, w := range strings.Fields(pw) {
		assert.Regexp(t, `^[A-Za-z][a-z]+$`, w)
	}
}

func TestMemorable_EmptySeparator(t *testing.T) {
	g := New(random.NewCryptoSource(), testPool(t))
	req := MemorableRequest{WordCount: 3, Capitalization: CapitalizeAll, IncludeNumbers: true, NumberPosition: NumberBetween}

	for iter := 0; iter < 20; iter++ {
		pw, err := g.Memorable(req)
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z][a-z]+(\d{2})?[A-Z][a-z]+(\d{2})?[A-Z][a-z]+$`, pw)
		assert.Len(t, digitsOf(pw), 2)
	}
}

func TestMemorable_NumberBetweenIsInterior(t *testing.T) {
	g := New(random.NewCryptoSource(), testPool(t))
	req := MemorableRequest{WordCount: 2, Separator: "_", Capitalization: CapitalizeNone, IncludeNumbers: true, NumberPosition: NumberBetween}

	for iter := 0; iter < 20; iter++ {
		pw, err := g.Memorable(req)
		require.NoError(t, err)
		assert.Regexp(t, `^[a-z]+_\d{2}_[a-z]+$`, pw)
	}
}

func TestMemorable_NumberAtRandom(t *testing.T) {
	g := New(random.NewCryptoSource(), testPool(t))
	req := MemorableRequest{WordCount: 2, Separator: "-", Capitalization: CapitalizeNone, IncludeNumbers: true, NumberPosition: NumberAtRandom}

	for iter := 0; iter < 20; iter++ {
		pw, err := g.Memorable(req)
		require.NoError(t, err)
		assert.Regexp(t, `^(\d{2}-[a-z]+-[a-z]+|[a-z]+-[a-z]+-\d{2})$`, pw)
	}
}

func TestMemorable_InvalidOptions(t *testing.T) {
	g := New(random.NewCryptoSource(), testPool(t))

	_, err := g.Memorable(MemorableRequest{WordCount: 3, Capitalization: "shout"})
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = g.Memorable(MemorableRequest{WordCount: 3, Capitalization: CapitalizeNone, IncludeNumbers: true, NumberPosition: "middle"})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestMemorable_NoPool(t *testing.T) {
	g := New(random.NewCryptoSource(), nil)

	_, err := g.Memorable(DefaultMemorable())
	assert.ErrorIs(t, err, ErrEmptyWordPool)
}

func TestMemorable_DoesNotMutatePool(t *testing.T) {
	p := testPool(t)
	before := append([]string(nil), p.All()...)
	g := New(random.NewCryptoSource(), p)

	for iter := 0; iter < 20; iter++ {
		_, err := g.Memorable(MemorableRequest{WordCount: 6, Separator: "-", Capitalization: CapitalizeAll, IncludeNumbers: true, NumberPosition: NumberBetween})
		require.NoError(t, err)
	}
	assert.Equal(t, before, p.All())
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (r MemorableRequest) withWords(n int) MemorableRequest {
	r.WordCount = n
	return r
}
