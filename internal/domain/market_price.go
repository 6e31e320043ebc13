package domain

import "github.com/shopspring/decimal"

// Tradable assets
const (
	AssetBitcoin  = "Bitcoin"
	AssetEthereum = "Ethereum"
	AssetSolana   = "Solana"
	AssetRipple   = "Ripple"
)

// Quote is the price of an asset from the static price table
type Quote struct {
	Asset string          `json:"asset"`
	Price decimal.Decimal `json:"price"`
}

// DefaultPriceTable returns the demo price table, in USD, in display order.
func DefaultPriceTable() []Quote {
	return []Quote{
		{Asset: AssetBitcoin, Price: decimal.NewFromInt(64000)},
		{Asset: AssetEthereum, Price: decimal.NewFromInt(3100)},
		{Asset: AssetSolana, Price: decimal.NewFromInt(150)},
		{Asset: AssetRipple, Price: decimal.RequireFromString("0.65")},
	}
}
