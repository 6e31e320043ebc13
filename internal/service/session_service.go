package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cryptowise/internal/domain"
	"cryptowise/internal/utils"
)

// DefaultSessionTTL is the lifetime of a login when none is configured
const DefaultSessionTTL = 24 * time.Hour

// TokenCodec signs session tokens and reads the session ID back
type TokenCodec interface {
	Issue(session *domain.Session) (string, error)
	Parse(token string) (uuid.UUID, error)
}

// LoginResult is what a successful login hands back to the client
type LoginResult struct {
	Token   string
	Session *domain.Session
	User    *domain.User
}

// SessionService tracks authenticated logins
type SessionService struct {
	accounts    *AccountService
	sessionRepo domain.SessionRepository
	tokens      TokenCodec
	ttl         time.Duration
	now         utils.Clock
	log         logrus.FieldLogger
}

// NewSessionService creates a new SessionService
func NewSessionService(
	accounts *AccountService,
	sessionRepo domain.SessionRepository,
	tokens TokenCodec,
	ttl time.Duration,
	now utils.Clock,
	log logrus.FieldLogger,
) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		accounts:    accounts,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		ttl:         ttl,
		now:         now,
		log:         log,
	}
}

// Login authenticates the credentials and opens a session
func (s *SessionService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Username:  user.Username,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.log.WithFields(logrus.Fields{"username": user.Username, "session_id": session.ID}).Info("user logged in")
	return &LoginResult{Token: token, Session: session, User: user}, nil
}

// Resolve returns the identity a token authenticates. Any failure is
// reported as ErrUnauthenticated.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.User, *domain.Session, error) {
	sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: session revoked", domain.ErrUnauthenticated)
		}
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired(s.now()) {
		return nil, nil, fmt.Errorf("%w: session expired", domain.ErrUnauthenticated)
	}

	user, err := s.accounts.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown user", domain.ErrUnauthenticated)
		}
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	return user, session, nil
}

// Logout revokes the session behind token. Logging out twice, or with a
// token that no longer verifies, is not an error.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.log.WithField("session_id", sessionID).Info("user logged out")
	return nil
}

// SweepExpired removes sessions that expired before now
func (s *SessionService) SweepExpired(ctx context.Context) (int, error) {
	removed, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	if removed > 0 {
		s.log.WithField("removed", removed).Info("expired sessions swept")
	}
	return removed, nil
}
