package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create stores a new user, failing with ErrDuplicateUsername if the username is taken
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// UpdateLanguage updates the user's preferred language
	UpdateLanguage(ctx context.Context, id uuid.UUID, language string) (*User, error)

	// Count returns the number of registered users
	Count(ctx context.Context) (int, error)
}

// TradeRepository defines the interface for the append-only trade log
type TradeRepository interface {
	// Append adds a trade at the end of the log
	Append(ctx context.Context, trade *Trade) error

	// GetByUsername retrieves the trades of a user in insertion order
	GetByUsername(ctx context.Context, username string) ([]Trade, error)

	// Count returns the number of trades across all users
	Count(ctx context.Context) (int, error)
}

// ReminderRepository defines the interface for reminder operations
type ReminderRepository interface {
	// Save appends a new reminder
	Save(ctx context.Context, reminder *Reminder) error

	// GetByUsername retrieves the reminders of a user in insertion order
	GetByUsername(ctx context.Context, username string) ([]Reminder, error)
}

// SessionRepository defines the interface for session operations
type SessionRepository interface {
	// Save stores a session until its expiry
	Save(ctx context.Context, session *Session) error

	// GetByID retrieves a session, ErrNotFound if unknown
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes the sessions expired at now and returns how many were removed
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
