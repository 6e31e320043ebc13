package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cryptowise/internal/domain"
)

// TokenCookie is the cookie carrying the session token for browser clients
const TokenCookie = "token"

const (
	contextUserKey    = "user"
	contextSessionKey = "session"
	contextTokenKey   = "token"
)

// ErrInvalidToken is returned when a token fails signature or claim checks
var ErrInvalidToken = errors.New("invalid or expired token")

// JWTClaims represents the JWT token claims. The registered ID (jti) is the session ID.
type JWTClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 session tokens
type TokenManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenManager creates a new TokenManager
func NewTokenManager(secret, issuer string, now func() time.Time) *TokenManager {
	if now == nil {
		now = time.Now
	}
	return &TokenManager{secret: []byte(secret), issuer: issuer, now: now}
}

// Issue signs a token for session
func (m *TokenManager) Issue(session *domain.Session) (string, error) {
	claims := &JWTClaims{
		UserID:   session.UserID,
		Username: session.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			Subject:   session.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns the session ID it addresses
func (m *TokenManager) Parse(tokenString string) (uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad jti", ErrInvalidToken)
	}
	return sessionID, nil
}

// SessionResolver maps a token to the identity it authenticates
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, *domain.Session, error)
}

// TokenFromRequest extracts the token from the Authorization header, falling
// back to the token cookie. Returns "" when neither is present.
func TokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}

	cookie, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireAuth rejects requests without a live session
func RequireAuth(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication token").SetInternal(domain.ErrUnauthenticated)
			}

			user, session, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token").SetInternal(err)
			}

			setIdentity(c, token, user, session)
			return next(c)
		}
	}
}

// OptionalAuth resolves the session when one is presented and lets anonymous
// requests through
func OptionalAuth(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return next(c)
			}

			if user, session, err := resolver.Resolve(c.Request().Context(), token); err == nil {
				setIdentity(c, token, user, session)
			}
			return next(c)
		}
	}
}

func setIdentity(c echo.Context, token string, user *domain.User, session *domain.Session) {
	c.Set(contextUserKey, user)
	c.Set(contextSessionKey, session)
	c.Set(contextTokenKey, token)
}

// CurrentUser returns the authenticated identity, or nil for anonymous requests
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(contextUserKey).(*domain.User)
	return user
}

// CurrentSession returns the resolved session, or nil
func CurrentSession(c echo.Context) *domain.Session {
	session, _ := c.Get(contextSessionKey).(*domain.Session)
	return session
}

// CurrentToken returns the token the session was resolved from
func CurrentToken(c echo.Context) string {
	token, _ := c.Get(contextTokenKey).(string)
	return token
}
