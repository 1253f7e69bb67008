package generator

import (
	"fmt"
	"strings"
)

// Type identifies a password policy.
type Type string

const (
	TypeUniform   Type = "uniform"
	TypePin       Type = "pin"
	TypeMemorable Type = "memorable"
	TypeSmart     Type = "smart"
)

// ParseType converts a policy name to a Type. "random" is accepted as an
// alias for the uniform policy.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "random":
		return TypeUniform, nil
	case "pin":
		return TypePin, nil
	case "memorable":
		return TypeMemorable, nil
	case "smart":
		return TypeSmart, nil
	}
	return "", fmt.Errorf("%w: unknown password type %q", ErrInvalidOption, s)
}

// Request is one of UniformRequest, PinRequest, MemorableRequest or SmartRequest.
type Request interface {
	Type() Type
	isRequest()
}

// Length bounds enforced by the generators.
const (
	MinUniformLength = 1
	MaxUniformLength = 128
	MinPinLength     = 4
	MaxPinLength     = 12
	MinWordCount     = 2
	MaxWordCount     = 6
)

// UniformRequest configures a uniformly random password.
type UniformRequest struct {
	Length           int
	Lower            bool
	Upper            bool
	Digits           bool
	Symbols          bool
	CustomSymbols    string // empty means DefaultSymbols
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
	MinPerClass      map[Class]int
}

// PinRequest configures a numeric PIN. ExcludeDigits lists digits that must
// not appear. Strict turns the best-effort fallbacks into errors.
type PinRequest struct {
	Length        int
	ExcludeDigits string
	NoRepeats     bool
	NoSequence    bool
	Strict        bool
}

// Capitalization controls how memorable words are capitalized.
type Capitalization string

const (
	CapitalizeNone   Capitalization = "none"
	CapitalizeFirst  Capitalization = "first"
	CapitalizeAll    Capitalization = "all"
	CapitalizeRandom Capitalization = "random"
)

// NumberPosition controls where a memorable password's number goes.
type NumberPosition string

const (
	NumberAtEnd    NumberPosition = "end"
	NumberBetween  NumberPosition = "between"
	NumberAtRandom NumberPosition = "random"
)

// MemorableRequest configures a word-based password.
type MemorableRequest struct {
	WordCount      int
	Separator      string
	Capitalization Capitalization
	IncludeNumbers bool
	NumberPosition NumberPosition
}

// Complexity selects the numeric and symbol payload of a smart password.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// WordOrder selects the base word pattern of a smart password.
type WordOrder string

const (
	OrderAdjectiveNoun WordOrder = "adjective-noun"
	OrderVerbNoun      WordOrder = "verb-noun"
	OrderRandom        WordOrder = "random"
)

// SmartRequest configures a pattern password.
type SmartRequest struct {
	Complexity     Complexity
	WordOrder      WordOrder
	IncludeSymbols bool
}

func (UniformRequest) Type() Type   { return TypeUniform }
func (PinRequest) Type() Type       { return TypePin }
func (MemorableRequest) Type() Type { return TypeMemorable }
func (SmartRequest) Type() Type     { return TypeSmart }

func (UniformRequest) isRequest()   {}
func (PinRequest) isRequest()       {}
func (MemorableRequest) isRequest() {}
func (SmartRequest) isRequest()     {}

// DefaultUniform returns 16 characters drawn from every class, one of each guaranteed.
func DefaultUniform() UniformRequest {
	return UniformRequest{
		Length:        16,
		Lower:         true,
		Upper:         true,
		Digits:        true,
		Symbols:       true,
		CustomSymbols: DefaultSymbols,
		MinPerClass: map[Class]int{
			ClassLower:  1,
			ClassUpper:  1,
			ClassDigit:  1,
			ClassSymbol: 1,
		},
	}
}

// DefaultPin returns an unconstrained six digit PIN request.
func DefaultPin() PinRequest {
	return PinRequest{Length: 6}
}

// DefaultMemorable returns three dash-separated words with a trailing number.
func DefaultMemorable() MemorableRequest {
	return MemorableRequest{
		WordCount:      3,
		Separator:      "-",
		Capitalization: CapitalizeFirst,
		IncludeNumbers: true,
		NumberPosition: NumberAtEnd,
	}
}

// DefaultSmart returns a medium complexity request with a random word order.
func DefaultSmart() SmartRequest {
	return SmartRequest{
		Complexity:     ComplexityMedium,
		WordOrder:      OrderRandom,
		IncludeSymbols: true,
	}
}

func (c Capitalization) valid() bool {
	switch c {
	case CapitalizeNone, CapitalizeFirst, CapitalizeAll, CapitalizeRandom:
		return true
	}
	return false
}

func (p NumberPosition) valid() bool {
	switch p {
	case NumberAtEnd, NumberBetween, NumberAtRandom:
		return true
	}
	return false
}

func (c Complexity) valid() bool {
	switch c {
	case ComplexitySimple, ComplexityMedium, ComplexityComplex:
		return true
	}
	return false
}

func (o WordOrder) valid() bool {
	switch o {
	case OrderAdjectiveNoun, OrderVerbNoun, OrderRandom:
		return true
	}
	return false
}
