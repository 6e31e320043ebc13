package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptowise/internal/domain"
	"cryptowise/internal/repository"
	"cryptowise/internal/service"
)

var (
	alice = &domain.User{Username: "alice"}
	bob   = &domain.User{Username: "bob"}
)

type ledgerFixture struct {
	ts   *TradingService
	repo domain.TradeRepository
	now  time.Time
}

func newLedger() *ledgerFixture {
	log, _ := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	f := &ledgerFixture{
		repo: repository.NewTradeRepository(),
		now:  time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time {
		f.now = f.now.Add(time.Second)
		return f.now
	}
	broker := service.NewVirtualBrokerService(service.NewMarketPriceService(nil))
	f.ts = NewTradingService(f.repo, broker, clock, log)
	return f
}

func TestTradingService_RecordTrade(t *testing.T) {
	ctx := context.Background()
	f := newLedger()

	trade, err := f.ts.RecordTrade(ctx, alice, domain.AssetBitcoin, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, trade.UnitPrice.Equal(decimal.NewFromInt(64000)))
	assert.True(t, trade.USDAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "alice", trade.Username)
	assert.Equal(t, f.now, trade.CreatedAt)

	history, err := f.ts.HistoryFor(ctx, alice)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, trade.ID, history[len(history)-1].ID)

	assert.Equal(t, "You bought $500.00 worth of Bitcoin at $64,000.00!", f.ts.Confirmation(trade))
}

func TestTradingService_RecordTradeRejections(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		asset   string
		amount  decimal.Decimal
		wantErr error
	}{
		{"no identity", nil, domain.AssetBitcoin, decimal.NewFromInt(500), domain.ErrUnauthenticated},
		{"no identity beats bad amount", nil, "Dogecoin", decimal.Zero, domain.ErrUnauthenticated},
		{"zero amount", alice, domain.AssetBitcoin, decimal.Zero, domain.ErrInvalidAmount},
		{"negative amount", alice, domain.AssetBitcoin, decimal.NewFromInt(-5), domain.ErrInvalidAmount},
		{"bad amount beats unknown asset", alice, "Dogecoin", decimal.Zero, domain.ErrInvalidAmount},
		{"unknown asset", alice, "Dogecoin", decimal.NewFromInt(10), domain.ErrUnknownAsset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newLedger()

			_, err := f.ts.RecordTrade(ctx, alice, domain.AssetSolana, decimal.NewFromInt(1))
			require.NoError(t, err)
			before, err := f.ts.HistoryFor(ctx, alice)
			require.NoError(t, err)

			_, err = f.ts.RecordTrade(ctx, tt.user, tt.asset, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)

			after, err := f.ts.HistoryFor(ctx, alice)
			require.NoError(t, err)
			assert.Equal(t, before, after)

			count, err := f.repo.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestTradingService_HistoryIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	f := newLedger()

	a1, err := f.ts.RecordTrade(ctx, alice, domain.AssetBitcoin, decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = f.ts.RecordTrade(ctx, bob, domain.AssetEthereum, decimal.NewFromInt(200))
	require.NoError(t, err)
	a2, err := f.ts.RecordTrade(ctx, alice, domain.AssetRipple, decimal.NewFromInt(300))
	require.NoError(t, err)

	history, err := f.ts.HistoryFor(ctx, alice)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, a1.ID, history[0].ID)
	assert.Equal(t, a2.ID, history[1].ID)
	for _, tr := range history {
		assert.Equal(t, "alice", tr.Username)
	}
	assert.True(t, history[0].CreatedAt.Before(history[1].CreatedAt))

	again, err := f.ts.HistoryFor(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, history, again, "history is restartable")
}

func TestTradingService_HistoryWithoutIdentity(t *testing.T) {
	ctx := context.Background()
	f := newLedger()

	_, err := f.ts.RecordTrade(ctx, alice, domain.AssetBitcoin, decimal.NewFromInt(100))
	require.NoError(t, err)

	history, err := f.ts.HistoryFor(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestTradingService_PriceIsCopiedAtTradeTime(t *testing.T) {
	ctx := context.Background()
	f := newLedger()

	trade, err := f.ts.RecordTrade(ctx, alice, domain.AssetEthereum, decimal.NewFromInt(310))
	require.NoError(t, err)
	assert.Equal(t, "0.1", trade.Units().String())

	history, err := f.ts.HistoryFor(ctx, alice)
	require.NoError(t, err)
	history[0].UnitPrice = decimal.NewFromInt(1)

	reloaded, err := f.ts.HistoryFor(ctx, alice)
	require.NoError(t, err)
	assert.True(t, reloaded[0].UnitPrice.Equal(decimal.NewFromInt(3100)))
}
