package http

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"cryptowise/internal/domain"
	"cryptowise/internal/service"
)

// MarketHandler serves the price board
type MarketHandler struct {
	prices  *service.MarketPriceService
	respond *Responder
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(prices *service.MarketPriceService, respond *Responder) *MarketHandler {
	return &MarketHandler{prices: prices, respond: respond}
}

// GetQuotes returns the whole board
// GET /api/market/quotes
func (h *MarketHandler) GetQuotes(c echo.Context) error {
	return SuccessResponse(c, h.prices.Quotes())
}

// GetQuote returns the price of one asset, 404 when it is not on the board
// GET /api/market/quotes/:asset
func (h *MarketHandler) GetQuote(c echo.Context) error {
	asset := c.Param("asset")
	price, ok := h.prices.Quote(asset)
	if !ok {
		return NotFoundResponse(c, h.respond.Text(c, "unknown_asset"))
	}
	return SuccessMessageResponse(c,
		fmt.Sprintf("%s %s: %s", h.respond.Text(c, "current_price_label"), asset, service.FormatUSD(price)),
		domain.Quote{Asset: asset, Price: price})
}
