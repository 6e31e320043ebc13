package repository

import (
	"context"
	"fmt"
	"sync"

	"cryptowise/internal/domain"
)

// ReminderRepositoryImpl implements the ReminderRepository interface in memory
type ReminderRepositoryImpl struct {
	mu        sync.RWMutex
	reminders []domain.Reminder
}

// NewReminderRepository creates a new ReminderRepository
func NewReminderRepository() domain.ReminderRepository {
	return &ReminderRepositoryImpl{}
}

// Save appends a new reminder
func (r *ReminderRepositoryImpl) Save(ctx context.Context, reminder *domain.Reminder) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reminders = append(r.reminders, *reminder)
	return nil
}

// GetByUsername retrieves the reminders of a user in insertion order
func (r *ReminderRepositoryImpl) GetByUsername(ctx context.Context, username string) ([]domain.Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Reminder, 0)
	for _, rem := range r.reminders {
		if rem.Username == username {
			out = append(out, rem)
		}
	}
	return out, nil
}
