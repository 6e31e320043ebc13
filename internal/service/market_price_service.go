package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"cryptowise/internal/domain"
)

// MarketPriceService serves quotes from a fixed price table
type MarketPriceService struct {
	table  []domain.Quote
	prices map[string]decimal.Decimal
}

// NewMarketPriceService creates a new MarketPriceService. An empty table
// falls back to the demo prices. Entries without a positive price are left
// off the board, as are repeated assets.
func NewMarketPriceService(table []domain.Quote) *MarketPriceService {
	if len(table) == 0 {
		table = domain.DefaultPriceTable()
	}

	s := &MarketPriceService{
		table:  make([]domain.Quote, 0, len(table)),
		prices: make(map[string]decimal.Decimal, len(table)),
	}
	for _, q := range table {
		if _, dup := s.prices[q.Asset]; dup || !q.Price.IsPositive() {
			continue
		}
		s.table = append(s.table, q)
		s.prices[q.Asset] = q.Price
	}
	return s
}

// Quote returns the price of asset. ok is false when the asset is not on the
// board, which is the unavailable outcome rather than an error.
func (s *MarketPriceService) Quote(asset string) (price decimal.Decimal, ok bool) {
	price, ok = s.prices[asset]
	return price, ok
}

// Quotes returns the whole board in display order
func (s *MarketPriceService) Quotes() []domain.Quote {
	out := make([]domain.Quote, len(s.table))
	copy(out, s.table)
	return out
}

// Assets returns the tradable symbols in display order
func (s *MarketPriceService) Assets() []string {
	assets := make([]string, len(s.table))
	for i, q := range s.table {
		assets[i] = q.Asset
	}
	return assets
}

// ParsePriceTable parses "Bitcoin=64000,Ethereum=3100" into a price table.
// Prices must be positive.
func ParsePriceTable(raw string) ([]domain.Quote, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var table []domain.Quote
	seen := make(map[string]bool)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		asset, value, found := strings.Cut(entry, "=")
		asset = strings.TrimSpace(asset)
		if !found || asset == "" {
			return nil, fmt.Errorf("invalid price entry %q: want Asset=Price", entry)
		}
		if seen[asset] {
			return nil, fmt.Errorf("duplicate price entry for %s", asset)
		}

		price, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid price for %s: %w", asset, err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("price for %s must be positive", asset)
		}

		seen[asset] = true
		table = append(table, domain.Quote{Asset: asset, Price: price})
	}
	return table, nil
}
