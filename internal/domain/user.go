package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered identity
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	Language     string    `json:"language"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Language constants
const (
	LanguageEnglish   = "en"
	LanguageUrdu      = "ur"
	LanguageRomanUrdu = "ru"

	DefaultLanguage = LanguageEnglish
)

// SupportedLanguages lists the locale tags the content tables carry, in display order.
var SupportedLanguages = []string{LanguageEnglish, LanguageUrdu, LanguageRomanUrdu}

// IsSupportedLanguage reports whether lang has a translation table.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// PasswordHasher turns a plaintext password into a one-way digest and checks it back.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
