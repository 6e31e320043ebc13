package dto

import "time"

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *UserOutput `json:"user"`
}

// RegisterRequest represents the registration request payload. Empty fields
// are reported by the registry so the message names the missing field.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"max=64"`
	Email    string `json:"email" form:"email" validate:"max=254"`
	Password string `json:"password" form:"password" validate:"max=72"`
	Language string `json:"language" form:"language" validate:"omitempty,oneof=en ur ru"`
}
