package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (nil -> default) from an explicit zero value.
type GenerateRequest struct {
	Type      string            `json:"type" validate:"omitempty,oneof=uniform random pin memorable smart"`
	Count     int               `json:"count,omitempty" validate:"omitempty,min=1,max=100"`
	Uniform   *UniformOptions   `json:"uniform,omitempty"`
	Pin       *PinOptions       `json:"pin,omitempty"`
	Memorable *MemorableOptions `json:"memorable,omitempty"`
	Smart     *SmartOptions     `json:"smart,omitempty"`
}

// UniformOptions configures a uniformly random password.
type UniformOptions struct {
	Length           int    `json:"length,omitempty" validate:"omitempty,min=1,max=128"`
	Lowercase        *bool  `json:"lowercase,omitempty"`
	Uppercase        *bool  `json:"uppercase,omitempty"`
	Numbers          *bool  `json:"numbers,omitempty"`
	Symbols          *bool  `json:"symbols,omitempty"`
	CustomSymbols    string `json:"custom_symbols,omitempty" validate:"omitempty,max=64"`
	ExcludeSimilar   bool   `json:"exclude_similar,omitempty"`
	ExcludeAmbiguous bool   `json:"exclude_ambiguous,omitempty"`
	MinLowercase     *int   `json:"min_lowercase,omitempty" validate:"omitempty,min=0,max=128"`
	MinUppercase     *int   `json:"min_uppercase,omitempty" validate:"omitempty,min=0,max=128"`
	MinNumbers       *int   `json:"min_numbers,omitempty" validate:"omitempty,min=0,max=128"`
	MinSymbols       *int   `json:"min_symbols,omitempty" validate:"omitempty,min=0,max=128"`
}

// PinOptions configures a numeric PIN.
type PinOptions struct {
	Length        int    `json:"length,omitempty" validate:"omitempty,min=4,max=12"`
	ExcludeDigits string `json:"exclude_digits,omitempty" validate:"omitempty,numeric,max=10"`
	NoRepeats     bool   `json:"no_repeats,omitempty"`
	NoSequence    bool   `json:"no_sequence,omitempty"`
	Strict        bool   `json:"strict,omitempty"`
}

// MemorableOptions configures a word-based password.
type MemorableOptions struct {
	WordCount      int     `json:"word_count,omitempty" validate:"omitempty,min=2,max=6"`
	Separator      *string `json:"separator,omitempty" validate:"omitempty,max=4"`
	Capitalization string  `json:"capitalization,omitempty" validate:"omitempty,oneof=none first all random"`
	IncludeNumbers *bool   `json:"include_numbers,omitempty"`
	NumberPosition string  `json:"number_position,omitempty" validate:"omitempty,oneof=end between random"`
}

// SmartOptions configures a pattern password.
type SmartOptions struct {
	Complexity     string `json:"complexity,omitempty" validate:"omitempty,oneof=simple medium complex"`
	WordOrder      string `json:"word_order,omitempty" validate:"omitempty,oneof=adjective-noun verb-noun random"`
	IncludeSymbols *bool  `json:"include_symbols,omitempty"`
}

// GeneratedPassword is a single generated password with its strength.
type GeneratedPassword struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength int    `json:"strength"`
	Rating   string `json:"rating"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Type      string              `json:"type"`
	Passwords []GeneratedPassword `json:"passwords"`
}

// StrengthRequest asks for the score of a password under a policy.
type StrengthRequest struct {
	Password string `json:"password" validate:"max=1024"`
	Type     string `json:"type" validate:"omitempty,oneof=uniform random pin memorable smart"`
}

// StrengthResponse reports a strength score and its rating.
type StrengthResponse struct {
	Score       int    `json:"score"`
	Level       string `json:"level"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
