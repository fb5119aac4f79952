package account

import (
	"context"
	"fmt"
	"time"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/security"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

type AccountServicer interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.UserAccount, error)
	ListUsers(ctx context.Context) []model.UserAccount
	Authenticate(ctx context.Context, username, password string) (*model.UserAccount, error)
}

type Service struct {
	app      *model.Application
	store    repository.Store
	validate *validator.Validator
	hasher   security.PasswordHasher
}

func NewService(app *model.Application, store repository.Store, validate *validator.Validator, hasher security.PasswordHasher) *Service {
	return &Service{app: app, store: store, validate: validate, hasher: hasher}
}

// CreateUser hashes the plaintext credential before anything is stored.
// Usernames are not checked for uniqueness.
func (s *Service) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.UserAccount, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid user data: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.UserAccount{
		ID:           model.NextID(s.app.Users),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	}
	s.app.Users = append(s.app.Users, user)

	if err := s.store.Save(ctx, s.app); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &s.app.Users[len(s.app.Users)-1], nil
}

func (s *Service) ListUsers(ctx context.Context) []model.UserAccount {
	return s.app.Users
}

// Authenticate compares the credential against the first account matching the
// username and stamps its last login. Accounts never gate any operation; this
// only records the login.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.UserAccount, error) {
	var user *model.UserAccount
	for i := range s.app.Users {
		if s.app.Users[i].Username == username {
			user = &s.app.Users[i]
			break
		}
	}
	if user == nil {
		return nil, apperrors.NotFound("user", nil)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	now := time.Now().Format(model.DateLayout)
	user.LastLogin = &now

	if err := s.store.Save(ctx, s.app); err != nil {
		return nil, fmt.Errorf("failed to save last login: %w", err)
	}
	return user, nil
}
