package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"cryptowise/internal/domain"
)

// BuyRequest represents a market buy. Amount accepts a JSON number or string.
type BuyRequest struct {
	Asset  string          `json:"asset" form:"asset"`
	Amount decimal.Decimal `json:"amount" form:"amount"`
}

// TradeOutput represents a trade in API responses
type TradeOutput struct {
	ID        string          `json:"id"`
	Asset     string          `json:"asset"`
	USDAmount decimal.Decimal `json:"usd_amount"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Units     decimal.Decimal `json:"units"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewTradeOutput converts a domain trade
func NewTradeOutput(t *domain.Trade) TradeOutput {
	return TradeOutput{
		ID:        t.ID.String(),
		Asset:     t.Asset,
		USDAmount: t.USDAmount,
		UnitPrice: t.UnitPrice,
		Units:     t.Units(),
		Timestamp: t.CreatedAt,
	}
}

// NewTradeOutputs converts a history, keeping its order
func NewTradeOutputs(trades []domain.Trade) []TradeOutput {
	out := make([]TradeOutput, len(trades))
	for i := range trades {
		out[i] = NewTradeOutput(&trades[i])
	}
	return out
}

// BuyResponse is a recorded trade and its receipt
type BuyResponse struct {
	Trade        TradeOutput `json:"trade"`
	Confirmation string      `json:"confirmation"`
}

// ReminderRequest represents a new reminder. Time is HH:MM[:SS] today or RFC 3339.
type ReminderRequest struct {
	Message string `json:"message" form:"message" validate:"max=500"`
	Time    string `json:"time" form:"time"`
}

// ReminderOutput represents a reminder in API responses
type ReminderOutput struct {
	ID       string    `json:"id"`
	Message  string    `json:"message"`
	RemindAt time.Time `json:"remind_at"`
}

// NewReminderOutputs converts reminders, keeping their order
func NewReminderOutputs(reminders []domain.Reminder) []ReminderOutput {
	out := make([]ReminderOutput, len(reminders))
	for i, r := range reminders {
		out[i] = ReminderOutput{ID: r.ID.String(), Message: r.Message, RemindAt: r.RemindAt}
	}
	return out
}
