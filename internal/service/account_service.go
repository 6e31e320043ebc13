package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cryptowise/internal/domain"
	"cryptowise/internal/utils"
)

// RegisterInput carries the registration form
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Language string
}

// AccountService is the account registry: registration, authentication and preferences
type AccountService struct {
	userRepo        domain.UserRepository
	hasher          domain.PasswordHasher
	defaultLanguage string
	now             utils.Clock
	log             logrus.FieldLogger
}

// NewAccountService creates a new AccountService
func NewAccountService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	defaultLanguage string,
	now utils.Clock,
	log logrus.FieldLogger,
) *AccountService {
	if defaultLanguage == "" {
		defaultLanguage = domain.DefaultLanguage
	}
	return &AccountService{
		userRepo:        userRepo,
		hasher:          hasher,
		defaultLanguage: defaultLanguage,
		now:             now,
		log:             log,
	}
}

// Register creates a new identity. Fields are checked in form order:
// username, email, then password.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	switch {
	case in.Username == "":
		return nil, domain.MissingField("username")
	case in.Email == "":
		return nil, domain.MissingField("email")
	case in.Password == "":
		return nil, domain.MissingField("password")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	language := in.Language
	if language == "" {
		language = s.defaultLanguage
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Language:     language,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			s.log.WithField("username", in.Username).Info("registration rejected: username taken")
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.WithFields(logrus.Fields{"username": user.Username, "user_id": user.ID}).Info("user registered")
	return user, nil
}

// Authenticate returns the identity matching username and password.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// Empty inputs are the exception: they report MissingField, like registration.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	switch {
	case username == "":
		return nil, domain.MissingField("username")
	case password == "":
		return nil, domain.MissingField("password")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WithField("username", username).Info("login failed: no such user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.log.WithField("username", username).Info("login failed: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// SetPreferredLanguage updates the display locale of user
func (s *AccountService) SetPreferredLanguage(ctx context.Context, user *domain.User, language string) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	updated, err := s.userRepo.UpdateLanguage(ctx, user.ID, language)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	s.log.WithFields(logrus.Fields{"username": updated.Username, "language": language}).Debug("language updated")
	return updated, nil
}

// GetByID retrieves an identity by ID
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
