// Package service holds the business logic between the HTTP handlers and
// the repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gotodo/backend/internal/auth"
	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/repository"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

type UserService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register validates the request, hashes the password and persists the
// user. A duplicate email is reported as ErrConflict.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Password != req.PasswordConfirmation {
		return nil, fmt.Errorf("%w: password confirmation does not match", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must be %d-%d characters", ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}

	cred, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		Email:      email,
		Username:   strings.TrimSpace(req.Username),
		DerivedKey: cred.DerivedKey,
		Salt:       cred.Salt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues an access token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, int64, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", 0, ErrUnauthorized
		}
		return "", 0, err
	}

	if !s.hasher.Verify(password, user.Salt, user.DerivedKey) {
		return "", 0, ErrUnauthorized
	}

	return s.tokens.Issue(user.ID)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}
