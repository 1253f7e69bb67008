package generator

import "fmt"

func (r UniformRequest) charsetOptions() CharsetOptions {
	return CharsetOptions{
		Lower:            r.Lower,
		Upper:            r.Upper,
		Digits:           r.Digits,
		Symbols:          r.Symbols,
		CustomSymbols:    r.CustomSymbols,
		ExcludeSimilar:   r.ExcludeSimilar,
		ExcludeAmbiguous: r.ExcludeAmbiguous,
	}
}

// Uniform builds a password of exactly req.Length characters. Every selected
// class contributes max(1, MinPerClass[c]) guaranteed characters, the rest
// are drawn from the full alphabet, and the result is shuffled.
func (g *Generator) Uniform(req UniformRequest) (string, error) {
	if req.Length < MinUniformLength || req.Length > MaxUniformLength {
		return "", fmt.Errorf("%w: length %d not in [%d, %d]",
			ErrInvalidLength, req.Length, MinUniformLength, MaxUniformLength)
	}

	opts := req.charsetOptions()
	cs, err := BuildCharset(opts)
	if err != nil {
		return "", err
	}

	buf := make([]rune, 0, req.Length)

	for _, c := range Classes {
		if !opts.selected(c) {
			continue
		}

		minimum := req.MinPerClass[c]
		if minimum < 0 {
			return "", fmt.Errorf("%w: negative minimum for %s", ErrInvalidOption, c)
		}

		set := cs.Class(c)
		if len(set) == 0 {
			if minimum > 0 {
				return "", fmt.Errorf("%w: no %s characters remain", ErrEmptyAlphabetAfterExclusion, c)
			}
			continue
		}

		want := max(1, min(minimum, req.Length))
		for iter := 0; iter < want; iter++ {
			ch, err := g.pickRune(set)
			if err != nil {
				return "", err
			}
			buf = append(buf, ch)
		}
	}

	for len(buf) < req.Length {
		ch, err := g.pickRune(cs.Alphabet)
		if err != nil {
			return "", err
		}
		buf = append(buf, ch)
	}

	if err := g.shuffle(buf); err != nil {
		return "", err
	}

	// Required characters may outnumber the requested length.
	return string(buf[:req.Length]), nil
}
