package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"cryptowise/internal/domain"
	"cryptowise/internal/service"
	"cryptowise/internal/utils"
)

// TradingService is the trading ledger: market buys and per-user history
type TradingService struct {
	tradeRepo domain.TradeRepository
	broker    *service.VirtualBrokerService
	now       utils.Clock
	log       logrus.FieldLogger
}

// NewTradingService creates a new TradingService
func NewTradingService(
	tradeRepo domain.TradeRepository,
	broker *service.VirtualBrokerService,
	now utils.Clock,
	log logrus.FieldLogger,
) *TradingService {
	return &TradingService{
		tradeRepo: tradeRepo,
		broker:    broker,
		now:       now,
		log:       log,
	}
}

// RecordTrade buys usdAmount worth of asset for user at the current quote.
// Checks run in order: identity, amount, asset. A rejected trade leaves the
// ledger untouched.
func (ts *TradingService) RecordTrade(ctx context.Context, user *domain.User, asset string, usdAmount decimal.Decimal) (*domain.Trade, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !usdAmount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	fill, err := ts.broker.Fill(asset, usdAmount)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAsset) {
			ts.log.WithFields(logrus.Fields{"username": user.Username, "asset": asset}).Info("trade rejected: unknown asset")
		}
		return nil, err
	}

	trade := &domain.Trade{
		ID:        uuid.New(),
		Username:  user.Username,
		Asset:     fill.Asset,
		USDAmount: fill.USDAmount,
		UnitPrice: fill.UnitPrice,
		CreatedAt: ts.now(),
	}

	if err := ts.tradeRepo.Append(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to record trade: %w", err)
	}

	ts.log.WithFields(logrus.Fields{
		"username":   trade.Username,
		"asset":      trade.Asset,
		"usd_amount": trade.USDAmount.String(),
		"unit_price": trade.UnitPrice.String(),
	}).Info("trade recorded")

	return trade, nil
}

// HistoryFor returns the trades of user in the order they were recorded.
// Without a user the history is empty.
func (ts *TradingService) HistoryFor(ctx context.Context, user *domain.User) ([]domain.Trade, error) {
	if user == nil {
		return []domain.Trade{}, nil
	}

	trades, err := ts.tradeRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return trades, nil
}

// Confirmation returns the receipt text for a stored trade
func (ts *TradingService) Confirmation(trade *domain.Trade) string {
	return ts.broker.Confirmation(*trade)
}
