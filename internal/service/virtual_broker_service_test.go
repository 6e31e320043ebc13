package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptowise/internal/domain"
)

func TestVirtualBrokerService_Fill(t *testing.T) {
	broker := NewVirtualBrokerService(NewMarketPriceService(nil))

	fill, err := broker.Fill(domain.AssetBitcoin, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, fill.UnitPrice.Equal(decimal.NewFromInt(64000)))
	assert.True(t, fill.USDAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "0.0078125", fill.Units.String())

	_, err = broker.Fill("Dogecoin", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrUnknownAsset)
}

func TestVirtualBrokerService_NonPositivePriceIsUnavailable(t *testing.T) {
	prices := NewMarketPriceService([]domain.Quote{
		{Asset: "Free", Price: decimal.Zero},
		{Asset: "Negative", Price: decimal.NewFromInt(-5)},
		{Asset: domain.AssetSolana, Price: decimal.NewFromInt(150)},
	})
	broker := NewVirtualBrokerService(prices)

	assert.Equal(t, []string{domain.AssetSolana}, prices.Assets())

	for _, asset := range []string{"Free", "Negative"} {
		_, ok := prices.Quote(asset)
		assert.False(t, ok, asset)

		var err error
		require.NotPanics(t, func() {
			_, err = broker.Fill(asset, decimal.NewFromInt(10))
		})
		assert.ErrorIs(t, err, domain.ErrUnknownAsset)
	}
}

func TestVirtualBrokerService_Confirmation(t *testing.T) {
	broker := NewVirtualBrokerService(NewMarketPriceService(nil))

	msg := broker.Confirmation(domain.Trade{
		Asset:     domain.AssetBitcoin,
		USDAmount: decimal.NewFromInt(500),
		UnitPrice: decimal.NewFromInt(64000),
	})
	assert.Equal(t, "You bought $500.00 worth of Bitcoin at $64,000.00!", msg)
}

func TestFormatUSD(t *testing.T) {
	tests := map[string]string{
		"0.65":   "$0.65",
		"1234.5": "$1,234.50",
		"10.005": "$10.01",
		"3100":   "$3,100.00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatUSD(decimal.RequireFromString(in)), in)
	}
}
