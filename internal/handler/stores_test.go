package handler

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/passforge/passforge/internal/model"
	"github.com/passforge/passforge/internal/repository"
)

// memStore is an in-memory user and preset store for router tests.
type memStore struct {
	mu      sync.Mutex
	users   []model.User
	presets map[string]model.Preset
}

func newMemStore() *memStore {
	return &memStore{presets: make(map[string]model.Preset)}
}

func (m *memStore) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = int64(len(m.users) + 1)
	m.users = append(m.users, *user)
	return nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || int(id) > len(m.users) {
		return nil, repository.ErrUserNotFound
	}
	u := m.users[id-1]
	return &u, nil
}

func (m *memStore) UpdateAuthHash(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || int(id) > len(m.users) {
		return repository.ErrUserNotFound
	}
	m.users[id-1].AuthHash = hash
	return nil
}

// memPresets adapts memStore to service.PresetStore.
type memPresets struct{ *memStore }

func (m memPresets) Create(_ context.Context, p *model.Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.presets {
		if existing.UserID == p.UserID && existing.Name == p.Name {
			return repository.ErrDuplicatePresetName
		}
	}
	p.ID = uuid.NewString()
	m.presets[p.ID] = *p
	return nil
}

func (m memPresets) GetByID(_ context.Context, userID int64, id string) (*model.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.presets[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrPresetNotFound
	}
	return &p, nil
}

func (m memPresets) ListByUser(_ context.Context, userID int64) ([]model.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Preset
	for _, p := range m.presets {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memPresets) Update(_ context.Context, p *model.Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.presets[p.ID]
	if !ok || existing.UserID != p.UserID {
		return repository.ErrPresetNotFound
	}
	existing.Name, existing.Options = p.Name, p.Options
	m.presets[p.ID] = existing
	return nil
}

func (m memPresets) Delete(_ context.Context, userID int64, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.presets[id]
	if !ok || p.UserID != userID {
		return repository.ErrPresetNotFound
	}
	delete(m.presets, id)
	return nil
}
