package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge/internal/random"
	"github.com/passforge/passforge/internal/wordlist"
)

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func newTestGenerator() *Generator {
	return New(random.NewCryptoSource(), wordlist.Default())
}

func TestGenerate_Dispatch(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name  string
		req   Request
		check func(t *testing.T, pw string)
	}{
		{
			name: "uniform",
			req:  DefaultUniform(),
			check: func(t *testing.T, pw string) {
				assert.Len(t, []rune(pw), 16)
			},
		},
		{
			name: "pin",
			req:  DefaultPin(),
			check: func(t *testing.T, pw string) {
				assert.Regexp(t, `^\d{6}$`, pw)
			},
		},
		{
			name: "memorable",
			req:  DefaultMemorable(),
			check: func(t *testing.T, pw string) {
				assert.Regexp(t, `^[A-Z].*-\d{2}$`, pw)
			},
		},
		{
			name: "smart",
			req:  DefaultSmart(),
			check: func(t *testing.T, pw string) {
				assert.Regexp(t, `\d{3}`, pw)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := g.Generate(tt.req)
			require.NoError(t, err)
			tt.check(t, pw)
		})
	}
}

func TestGenerate_UnsupportedRequest(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Generate(nil)
	assert.ErrorIs(t, err, ErrInvalidOption)

	req := DefaultPin()
	_, err = g.Generate(&req)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestGenerate_EntropyUnavailable(t *testing.T) {
	g := New(random.NewCryptoSourceFrom(brokenReader{}), wordlist.Default())

	for _, req := range []Request{DefaultUniform(), DefaultPin(), DefaultMemorable(), DefaultSmart()} {
		pw, err := g.Generate(req)
		assert.ErrorIs(t, err, ErrEntropyUnavailable, "type %s", req.Type())
		assert.Empty(t, pw)
	}
}

func TestGenerate_DeterministicWithSequence(t *testing.T) {
	values := []int{7, 3, 19, 42, 5, 11, 2, 29, 64, 13, 8, 91}

	for _, req := range []Request{DefaultUniform(), DefaultPin(), DefaultMemorable(), DefaultSmart()} {
		a, err := New(random.NewSequence(values...), wordlist.Default()).Generate(req)
		require.NoError(t, err)
		b, err := New(random.NewSequence(values...), wordlist.Default()).Generate(req)
		require.NoError(t, err)
		assert.Equal(t, a, b, "type %s", req.Type())
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]Type{
		"uniform":   TypeUniform,
		"random":    TypeUniform,
		" PIN ":     TypePin,
		"memorable": TypeMemorable,
		"smart":     TypeSmart,
	}
	for in, want := range tests {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseType("passphrase")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrNoCharacterClassSelected))
	assert.True(t, IsValidation(ErrInvalidLength))
	assert.False(t, IsValidation(ErrEntropyUnavailable))
	assert.False(t, IsValidation(ErrEmptyWordPool))
	assert.False(t, IsValidation(errors.New("other")))
}
