package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade is an immutable record of a simulated purchase
type Trade struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Asset     string          `json:"asset"`
	USDAmount decimal.Decimal `json:"usd_amount"`
	UnitPrice decimal.Decimal `json:"unit_price"` // Quote at the instant of the trade
	CreatedAt time.Time       `json:"timestamp"`
}

// Units returns the quantity of the asset bought: USDAmount / UnitPrice.
func (t Trade) Units() decimal.Decimal {
	if t.UnitPrice.IsZero() {
		return decimal.Zero
	}
	return t.USDAmount.Div(t.UnitPrice)
}

// Reminder is a user note attached to a future time. Nothing fires it.
type Reminder struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	RemindAt  time.Time `json:"remind_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is an authenticated login, addressed by the JWT id of its token
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
