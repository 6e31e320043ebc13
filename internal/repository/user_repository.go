package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cryptowise/internal/domain"
)

// UserRepositoryImpl implements the UserRepository interface in memory
type UserRepositoryImpl struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*domain.User
	byUsername map[string]uuid.UUID
}

// NewUserRepository creates a new UserRepository
func NewUserRepository() domain.UserRepository {
	return &UserRepositoryImpl{
		byID:       make(map[uuid.UUID]*domain.User),
		byUsername: make(map[string]uuid.UUID),
	}
}

// Create creates a new user. The uniqueness check and the insert happen under one lock.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return domain.ErrDuplicateUsername
	}
	if _, exists := r.byID[user.ID]; exists {
		return fmt.Errorf("failed to create user: duplicate id %s", user.ID)
	}

	stored := *user
	r.byID[stored.ID] = &stored
	r.byUsername[stored.Username] = stored.ID

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("failed to get user by ID: %w", domain.ErrNotFound)
	}

	out := *user
	return &out, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("failed to get user by username: %w", domain.ErrNotFound)
	}

	out := *r.byID[id]
	return &out, nil
}

// UpdateLanguage updates the user's preferred language
func (r *UserRepositoryImpl) UpdateLanguage(ctx context.Context, id uuid.UUID, language string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to update language: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("failed to update language: %w", domain.ErrNotFound)
	}

	user.Language = language
	user.UpdatedAt = time.Now()

	out := *user
	return &out, nil
}

// Count returns the number of registered users
func (r *UserRepositoryImpl) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
