package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge/internal/crypto"
	"github.com/passforge/passforge/internal/model"
	"github.com/passforge/passforge/internal/repository"
)

const strongPassword = "Tr0ub4dor&3xyz"

// memUsers is an in-memory UserStore.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*model.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[int64]*model.User)}
}

func (m *memUsers) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (m *memUsers) UpdateAuthHash(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.AuthHash = hash
	return nil
}

func fastHashParams() crypto.HashParams {
	return crypto.HashParams{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func newTestAuthService(users UserStore) *AuthService {
	return NewAuthService(
		users,
		crypto.NewHasher(fastHashParams()),
		crypto.NewTokens("test-secret", time.Hour),
		50,
	)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestAuthService(newMemUsers())

	tests := []struct {
		name    string
		req     model.CreateUserRequest
		wantErr error
	}{
		{"empty email", model.CreateUserRequest{Password: strongPassword}, ErrInvalidRequest},
		{"malformed email", model.CreateUserRequest{Email: "nobody", Password: strongPassword}, ErrInvalidRequest},
		{"empty password", model.CreateUserRequest{Email: "test@example.com"}, ErrInvalidRequest},
		{"short password", model.CreateUserRequest{Email: "test@example.com", Password: "Ab1$"}, ErrInvalidRequest},
		{"weak password", model.CreateUserRequest{Email: "test@example.com", Password: "password"}, ErrPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(newMemUsers())
	ctx := context.Background()

	reg, err := svc.Register(ctx, model.CreateUserRequest{Email: "  Test@Example.com ", Password: strongPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "test@example.com", reg.User.Email, "email is normalized")

	_, err = svc.Register(ctx, model.CreateUserRequest{Email: "test@example.com", Password: strongPassword})
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(ctx, model.LoginRequest{Email: "TEST@example.com", Password: strongPassword})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	me, err := svc.GetUser(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", me.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestAuthService(newMemUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, model.CreateUserRequest{Email: "a@example.com", Password: strongPassword})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  model.LoginRequest
	}{
		{"unknown email", model.LoginRequest{Email: "b@example.com", Password: strongPassword}},
		{"wrong password", model.LoginRequest{Email: "a@example.com", Password: strongPassword + "!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogin_RehashesOutdatedHash(t *testing.T) {
	users := newMemUsers()
	ctx := context.Background()

	old := crypto.NewHasher(crypto.HashParams{Memory: 4 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	hash, err := old.Hash(strongPassword)
	require.NoError(t, err)

	user := &model.User{Email: "old@example.com", AuthHash: hash}
	require.NoError(t, users.Create(ctx, user))

	svc := newTestAuthService(users)
	_, err = svc.Login(ctx, model.LoginRequest{Email: "old@example.com", Password: strongPassword})
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, hash, stored.AuthHash, "stored hash was not upgraded")
	assert.False(t, crypto.NewHasher(fastHashParams()).NeedsRehash(stored.AuthHash))
}
