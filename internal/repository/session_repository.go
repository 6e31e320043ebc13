package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cryptowise/internal/domain"
)

// SessionRepositoryImpl implements the SessionRepository interface in memory
type SessionRepositoryImpl struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]domain.Session
}

// NewSessionRepository creates a new in-memory SessionRepository
func NewSessionRepository() domain.SessionRepository {
	return &SessionRepositoryImpl{sessions: make(map[uuid.UUID]domain.Session)}
}

// Save stores a session until its expiry
func (r *SessionRepositoryImpl) Save(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = *session
	return nil
}

// GetByID retrieves a session
func (r *SessionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("failed to get session: %w", domain.ErrNotFound)
	}
	return &s, nil
}

// Delete removes a session
func (r *SessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// DeleteExpired removes the sessions expired at now
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}
