package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotodo/backend/internal/auth"
	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email && u.DeletedAt == nil {
			return nil, repository.ErrConflict
		}
	}
	f.seq++
	stored := *user
	stored.ID = f.seq
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.users[stored.ID] = stored
	out := stored
	return &out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	stored := u
	return &stored, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email && u.DeletedAt == nil {
			stored := u
			return &stored, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.users[user.ID]
	if !ok || cur.DeletedAt != nil {
		return repository.ErrNotFound
	}
	stored := *user
	stored.UpdatedAt = time.Now()
	f.users[user.ID] = stored
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok || u.DeletedAt != nil {
		return false, nil
	}
	now := time.Now()
	u.DeletedAt = &now
	f.users[id] = u
	return true, nil
}

func newUserService(repo repository.UserRepository) (*UserService, *auth.TokenService) {
	tokens := auth.NewTokenService([]byte("test-secret-at-least-32-bytes-long"), 24*time.Hour)
	return NewUserService(repo, auth.NewPasswordHasher(), tokens), tokens
}

func registerRequest() model.RegisterRequest {
	return model.RegisterRequest{
		Email:                "alice@example.com",
		Username:             "alice",
		Password:             "Secret123!",
		PasswordConfirmation: "Secret123!",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a salted credential", func(t *testing.T) {
		svc, _ := newUserService(newFakeUserRepo())
		user, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)
		assert.Greater(t, user.ID, int64(0))
		assert.NotEmpty(t, user.Salt)
		assert.NotEmpty(t, user.DerivedKey)
		assert.NotContains(t, user.DerivedKey, "Secret123!")
	})

	t.Run("normalizes the email", func(t *testing.T) {
		svc, _ := newUserService(newFakeUserRepo())
		req := registerRequest()
		req.Email = "  Alice@Example.COM "
		user, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		svc, _ := newUserService(newFakeUserRepo())
		req := registerRequest()
		req.Email = "not-an-email"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects a mismatched confirmation", func(t *testing.T) {
		svc, _ := newUserService(newFakeUserRepo())
		req := registerRequest()
		req.PasswordConfirmation = "Secret123?"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		svc, _ := newUserService(newFakeUserRepo())
		req := registerRequest()
		req.Password = "short"
		req.PasswordConfirmation = "short"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, _ := newUserService(newFakeUserRepo())
		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)
		_, err = svc.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for the registered user", func(t *testing.T) {
		svc, tokens := newUserService(newFakeUserRepo())
		user, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		token, expiresIn, err := svc.Login(ctx, "alice@example.com", "Secret123!")
		require.NoError(t, err)
		assert.Greater(t, expiresIn, int64(0))

		userID, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		svc, _ := newUserService(newFakeUserRepo())
		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "alice@example.com", "WrongPass1!")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		svc, _ := newUserService(newFakeUserRepo())
		_, _, err := svc.Login(ctx, "nobody@example.com", "Secret123!")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
