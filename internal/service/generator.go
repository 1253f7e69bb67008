package service

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge/internal/generator"
	"github.com/passforge/passforge/internal/model"
	"github.com/passforge/passforge/internal/strength"
)

var ErrBatchTooLarge = errors.New("batch size exceeds limit")

// GeneratorService turns API requests into engine requests and scores the results.
type GeneratorService struct {
	gen      *generator.Generator
	maxBatch int
}

// NewGeneratorService creates a GeneratorService that generates at most
// maxBatch passwords per request.
func NewGeneratorService(gen *generator.Generator, maxBatch int) *GeneratorService {
	return &GeneratorService{gen: gen, maxBatch: max(1, maxBatch)}
}

// Generate produces req.Count passwords (default 1) under the requested policy.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := validateStruct(req); err != nil {
		return model.GenerateResponse{}, err
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count > s.maxBatch {
		return model.GenerateResponse{}, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, count, s.maxBatch)
	}

	genReq, err := buildRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	t := genReq.Type()
	resp := model.GenerateResponse{
		Type:      string(t),
		Passwords: make([]model.GeneratedPassword, 0, count),
	}
	for iter := 0; iter < count; iter++ {
		pw, err := s.gen.Generate(genReq)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		score := strength.Score(pw, t)
		resp.Passwords = append(resp.Passwords, model.GeneratedPassword{
			Password: pw,
			Length:   len([]rune(pw)),
			Strength: score,
			Rating:   string(strength.Rate(score, t).Level),
		})
	}

	return resp, nil
}

// Strength scores a password under a policy (uniform when unset).
func (s *GeneratorService) Strength(req model.StrengthRequest) (model.StrengthResponse, error) {
	if err := validateStruct(req); err != nil {
		return model.StrengthResponse{}, err
	}

	t := generator.TypeUniform
	if req.Type != "" {
		parsed, err := generator.ParseType(req.Type)
		if err != nil {
			return model.StrengthResponse{}, err
		}
		t = parsed
	}

	score := strength.Score(req.Password, t)
	rating := strength.Rate(score, t)
	return model.StrengthResponse{
		Score:       score,
		Level:       string(rating.Level),
		Label:       rating.Label,
		Description: rating.Description,
	}, nil
}

// buildRequest applies defaults to the options of the requested policy.
// Options given for other policies are ignored.
func buildRequest(req model.GenerateRequest) (generator.Request, error) {
	t := generator.TypeUniform
	if req.Type != "" {
		parsed, err := generator.ParseType(req.Type)
		if err != nil {
			return nil, err
		}
		t = parsed
	}

	switch t {
	case generator.TypePin:
		return pinRequest(req.Pin), nil
	case generator.TypeMemorable:
		return memorableRequest(req.Memorable), nil
	case generator.TypeSmart:
		return smartRequest(req.Smart), nil
	default:
		return uniformRequest(req.Uniform), nil
	}
}

func uniformRequest(o *model.UniformOptions) generator.UniformRequest {
	r := generator.DefaultUniform()
	if o == nil {
		return r
	}

	if o.Length != 0 {
		r.Length = o.Length
	}
	r.Lower = boolOrDefault(o.Lowercase, r.Lower)
	r.Upper = boolOrDefault(o.Uppercase, r.Upper)
	r.Digits = boolOrDefault(o.Numbers, r.Digits)
	r.Symbols = boolOrDefault(o.Symbols, r.Symbols)
	if o.CustomSymbols != "" {
		r.CustomSymbols = o.CustomSymbols
	}
	r.ExcludeSimilar = o.ExcludeSimilar
	r.ExcludeAmbiguous = o.ExcludeAmbiguous

	r.MinPerClass = map[generator.Class]int{
		generator.ClassLower:  intOrDefault(o.MinLowercase, 1),
		generator.ClassUpper:  intOrDefault(o.MinUppercase, 1),
		generator.ClassDigit:  intOrDefault(o.MinNumbers, 1),
		generator.ClassSymbol: intOrDefault(o.MinSymbols, 1),
	}
	return r
}

func pinRequest(o *model.PinOptions) generator.PinRequest {
	r := generator.DefaultPin()
	if o == nil {
		return r
	}

	if o.Length != 0 {
		r.Length = o.Length
	}
	r.ExcludeDigits = o.ExcludeDigits
	r.NoRepeats = o.NoRepeats
	r.NoSequence = o.NoSequence
	r.Strict = o.Strict
	return r
}

func memorableRequest(o *model.MemorableOptions) generator.MemorableRequest {
	r := generator.DefaultMemorable()
	if o == nil {
		return r
	}

	if o.WordCount != 0 {
		r.WordCount = o.WordCount
	}
	if o.Separator != nil {
		r.Separator = *o.Separator
	}
	if o.Capitalization != "" {
		r.Capitalization = generator.Capitalization(o.Capitalization)
	}
	r.IncludeNumbers = boolOrDefault(o.IncludeNumbers, r.IncludeNumbers)
	if o.NumberPosition != "" {
		r.NumberPosition = generator.NumberPosition(o.NumberPosition)
	}
	return r
}

func smartRequest(o *model.SmartOptions) generator.SmartRequest {
	r := generator.DefaultSmart()
	if o == nil {
		return r
	}

	if o.Complexity != "" {
		r.Complexity = generator.Complexity(o.Complexity)
	}
	if o.WordOrder != "" {
		r.WordOrder = generator.WordOrder(o.WordOrder)
	}
	r.IncludeSymbols = boolOrDefault(o.IncludeSymbols, r.IncludeSymbols)
	return r
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
