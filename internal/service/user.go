package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgo/places/api/internal/database"
	"github.com/forgo/places/api/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByEmailAndUsername(ctx context.Context, email, username string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

// UserService handles user accounts
type UserService struct {
	userRepo UserRepository
	hasher   PasswordHasher
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	UserRepo UserRepository
	Hasher   PasswordHasher
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	hasher := cfg.Hasher
	if hasher == nil {
		hasher = NewBcryptHasher(DefaultBcryptCost)
	}
	return &UserService{
		userRepo: cfg.UserRepo,
		hasher:   hasher,
	}
}

// ListUsers returns every user without password hashes
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "list users", err)
	}
	for _, u := range users {
		u.Hash = ""
	}
	return users, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, "get user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteUser removes a user. Places the user created are not removed.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return storeError(ctx, "delete user", err)
	}
	return nil
}

// Signup creates a user unless one with the same email and username exists
func (s *UserService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)

	existing, err := s.userRepo.GetByEmailAndUsername(ctx, email, username)
	if err != nil {
		return nil, storeError(ctx, "check existing user", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	image := req.Image
	if image == "" {
		image = model.DefaultUserImage
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Hash:     hash,
		Image:    image,
		Places:   []string{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, storeError(ctx, "create user", err)
	}
	return user, nil
}

// Login returns the user whose email and password match
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, storeError(ctx, "find user", err)
	}
	if user == nil || !s.hasher.Compare(user.Hash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
