package dto

import (
	"time"

	"cryptowise/internal/domain"
)

// SetLanguageRequest represents the language settings request
type SetLanguageRequest struct {
	Language string `json:"language" form:"language" validate:"required,oneof=en ur ru"`
}

// UserOutput represents user details in API responses
type UserOutput struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserOutput converts a domain user, leaving the password hash behind
func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
	}
}

// MeOutput is the current identity with the expiry of the session it was resolved from
type MeOutput struct {
	*UserOutput
	SessionExpiresAt *time.Time `json:"session_expires_at,omitempty"`
}

// NewMeOutput builds a MeOutput. session may be nil.
func NewMeOutput(u *domain.User, session *domain.Session) *MeOutput {
	out := &MeOutput{UserOutput: NewUserOutput(u)}
	if session != nil {
		expires := session.ExpiresAt
		out.SessionExpiresAt = &expires
	}
	return out
}
