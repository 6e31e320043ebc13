package service

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"cryptowise/internal/domain"
)

// Fill is the priced outcome of a market buy
type Fill struct {
	Asset     string
	USDAmount decimal.Decimal
	UnitPrice decimal.Decimal
	Units     decimal.Decimal
}

// VirtualBrokerService simulates order execution against the static board
type VirtualBrokerService struct {
	priceService *MarketPriceService
}

// NewVirtualBrokerService creates a new VirtualBrokerService
func NewVirtualBrokerService(priceService *MarketPriceService) *VirtualBrokerService {
	return &VirtualBrokerService{priceService: priceService}
}

// Fill prices a buy of usdAmount worth of asset at the current quote
func (s *VirtualBrokerService) Fill(asset string, usdAmount decimal.Decimal) (Fill, error) {
	price, ok := s.priceService.Quote(asset)
	if !ok {
		return Fill{}, fmt.Errorf("%w: %s", domain.ErrUnknownAsset, asset)
	}

	return Fill{
		Asset:     asset,
		USDAmount: usdAmount,
		UnitPrice: price,
		Units:     usdAmount.Div(price),
	}, nil
}

// Confirmation builds the user-facing receipt of a trade
func (s *VirtualBrokerService) Confirmation(trade domain.Trade) string {
	return fmt.Sprintf("You bought %s worth of %s at %s!",
		FormatUSD(trade.USDAmount), trade.Asset, FormatUSD(trade.UnitPrice))
}

// FormatUSD renders an amount as US dollars, rounded to cents: $64,000.00
func FormatUSD(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
