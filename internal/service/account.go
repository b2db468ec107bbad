package service

import (
	"context"

	"github.com/forgo/chrono/api/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// AccountService handles registration and login
type AccountService struct {
	userRepo UserRepository
	digest   PasswordDigest
}

// AccountServiceConfig holds configuration for the account service
type AccountServiceConfig struct {
	UserRepo UserRepository
	Digest   PasswordDigest
}

// NewAccountService creates a new account service
func NewAccountService(cfg AccountServiceConfig) *AccountService {
	digest := cfg.Digest
	if digest == nil {
		digest = BcryptDigest{}
	}
	return &AccountService{
		userRepo: cfg.UserRepo,
		digest:   digest,
	}
}

// Register creates a new user account. The username is the primary key
// and must be unused; the preferred name defaults to the username and
// all reference lists start empty.
func (s *AccountService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	digest, err := s.digest.Digest(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       username,
		PasswordDigest: digest,
		PreferredName:  username,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks a username/password pair against the stored
// digest and returns the account on success.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	if !s.digest.Verify(password, user.PasswordDigest) {
		return nil, ErrPasswordMismatch
	}
	return user, nil
}
