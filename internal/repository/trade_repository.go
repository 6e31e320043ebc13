package repository

import (
	"context"
	"fmt"
	"sync"

	"cryptowise/internal/domain"
)

// TradeRepositoryImpl implements the TradeRepository interface as an in-memory append-only log
type TradeRepositoryImpl struct {
	mu     sync.RWMutex
	trades []domain.Trade
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository() domain.TradeRepository {
	return &TradeRepositoryImpl{trades: make([]domain.Trade, 0)}
}

// Append adds a trade at the end of the log
func (r *TradeRepositoryImpl) Append(ctx context.Context, trade *domain.Trade) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to append trade: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.trades = append(r.trades, *trade)
	return nil
}

// GetByUsername retrieves the trades of a user in insertion order.
// The returned slice is a copy; it is never nil.
func (r *TradeRepositoryImpl) GetByUsername(ctx context.Context, username string) ([]domain.Trade, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get trades: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Trade, 0)
	for _, t := range r.trades {
		if t.Username == username {
			out = append(out, t)
		}
	}
	return out, nil
}

// Count returns the number of trades across all users
func (r *TradeRepositoryImpl) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trades), nil
}
