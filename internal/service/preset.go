package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/passforge/passforge/internal/model"
	"github.com/passforge/passforge/internal/repository"
)

var (
	ErrPresetNotFound  = errors.New("preset not found")
	ErrPresetNameTaken = errors.New("preset name already taken")
)

// PresetStore persists generator presets. Implemented by repository.PresetRepository.
type PresetStore interface {
	Create(ctx context.Context, p *model.Preset) error
	GetByID(ctx context.Context, userID int64, id string) (*model.Preset, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Preset, error)
	Update(ctx context.Context, p *model.Preset) error
	Delete(ctx context.Context, userID int64, id string) error
}

// PresetService manages named generation requests. Presets store options
// only; passwords generated from them are never persisted.
type PresetService struct {
	store PresetStore
	gen   *GeneratorService
}

// NewPresetService creates a new PresetService.
func NewPresetService(store PresetStore, gen *GeneratorService) *PresetService {
	return &PresetService{store: store, gen: gen}
}

// Create stores a new preset after checking that its options can generate.
func (s *PresetService) Create(ctx context.Context, userID int64, req model.PresetRequest) (model.PresetResponse, error) {
	options, err := s.encode(req)
	if err != nil {
		return model.PresetResponse{}, err
	}

	p := &model.Preset{UserID: userID, Name: req.Name, Options: options}
	if err := s.store.Create(ctx, p); err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}

	stored, err := s.store.GetByID(ctx, userID, p.ID)
	if err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}
	return presetResponse(stored)
}

// List returns all presets of a user.
func (s *PresetService) List(ctx context.Context, userID int64) ([]model.PresetResponse, error) {
	presets, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]model.PresetResponse, 0, len(presets))
	for i := range presets {
		r, err := presetResponse(&presets[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, r)
	}
	return resp, nil
}

// Get returns a single preset of a user.
func (s *PresetService) Get(ctx context.Context, userID int64, id string) (model.PresetResponse, error) {
	p, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}
	return presetResponse(p)
}

// Update replaces the name and options of a preset.
func (s *PresetService) Update(ctx context.Context, userID int64, id string, req model.PresetRequest) (model.PresetResponse, error) {
	options, err := s.encode(req)
	if err != nil {
		return model.PresetResponse{}, err
	}

	p := &model.Preset{ID: id, UserID: userID, Name: req.Name, Options: options}
	if err := s.store.Update(ctx, p); err != nil {
		return model.PresetResponse{}, mapPresetError(err)
	}

	return s.Get(ctx, userID, id)
}

// Delete removes a preset.
func (s *PresetService) Delete(ctx context.Context, userID int64, id string) error {
	return mapPresetError(s.store.Delete(ctx, userID, id))
}

// Generate runs the stored request of a preset.
func (s *PresetService) Generate(ctx context.Context, userID int64, id string) (model.GenerateResponse, error) {
	p, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return model.GenerateResponse{}, mapPresetError(err)
	}

	var req model.GenerateRequest
	if err := json.Unmarshal(p.Options, &req); err != nil {
		return model.GenerateResponse{}, fmt.Errorf("decoding preset %s: %w", p.ID, err)
	}
	return s.gen.Generate(req)
}

// encode validates req and serializes its options. A trial generation
// rejects options that validate structurally but cannot produce a password.
func (s *PresetService) encode(req model.PresetRequest) ([]byte, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	trial := req.Options
	trial.Count = 1
	if _, err := s.gen.Generate(trial); err != nil {
		return nil, err
	}
	if req.Options.Count > s.gen.maxBatch {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, req.Options.Count, s.gen.maxBatch)
	}

	return json.Marshal(req.Options)
}

func presetResponse(p *model.Preset) (model.PresetResponse, error) {
	var opts model.GenerateRequest
	if err := json.Unmarshal(p.Options, &opts); err != nil {
		return model.PresetResponse{}, fmt.Errorf("decoding preset %s: %w", p.ID, err)
	}

	return model.PresetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Options:   opts,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func mapPresetError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPresetNotFound):
		return ErrPresetNotFound
	case errors.Is(err, repository.ErrDuplicatePresetName):
		return ErrPresetNameTaken
	}
	return err
}
