package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptowise/internal/domain"
)

func newTrade(username, asset string, amount int64) *domain.Trade {
	return &domain.Trade{
		ID:        uuid.New(),
		Username:  username,
		Asset:     asset,
		USDAmount: decimal.NewFromInt(amount),
		UnitPrice: decimal.NewFromInt(100),
		CreatedAt: time.Now(),
	}
}

func TestTradeRepository_FiltersByUsernameInOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTradeRepository()

	require.NoError(t, repo.Append(ctx, newTrade("alice", domain.AssetBitcoin, 1)))
	require.NoError(t, repo.Append(ctx, newTrade("bob", domain.AssetSolana, 2)))
	require.NoError(t, repo.Append(ctx, newTrade("alice", domain.AssetRipple, 3)))

	trades, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, domain.AssetBitcoin, trades[0].Asset)
	assert.Equal(t, domain.AssetRipple, trades[1].Asset)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTradeRepository_EmptyHistoryIsNotNil(t *testing.T) {
	trades, err := NewTradeRepository().GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, trades)
	assert.Empty(t, trades)
}

func TestTradeRepository_RecordsCannotBeMutatedThroughResults(t *testing.T) {
	ctx := context.Background()
	repo := NewTradeRepository()

	original := newTrade("alice", domain.AssetBitcoin, 500)
	require.NoError(t, repo.Append(ctx, original))
	original.Asset = domain.AssetSolana

	first, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	first[0].USDAmount = decimal.NewFromInt(1)

	second, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.AssetBitcoin, second[0].Asset)
	assert.True(t, second[0].USDAmount.Equal(decimal.NewFromInt(500)))
}
