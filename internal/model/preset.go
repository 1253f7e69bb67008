package model

import "time"

// Preset is a named, stored generation request owned by a user.
// Only the options are stored, never a generated password.
type Preset struct {
	ID        string
	UserID    int64
	Name      string
	Options   []byte // JSON encoded GenerateRequest
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PresetRequest creates or replaces a preset.
type PresetRequest struct {
	Name    string          `json:"name" validate:"required,max=64"`
	Options GenerateRequest `json:"options"`
}

// PresetResponse represents a preset in API responses.
type PresetResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Options   GenerateRequest `json:"options"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
