package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cryptowise/internal/delivery/http/dto"
	"cryptowise/internal/export"
	"cryptowise/internal/middleware"
	"cryptowise/internal/usecase"
)

// TradeHandler handles the trading desk
type TradeHandler struct {
	trading *usecase.TradingService
	respond *Responder
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(trading *usecase.TradingService, respond *Responder) *TradeHandler {
	return &TradeHandler{trading: trading, respond: respond}
}

// Buy records a market buy for the current user
// POST /api/trades/buy
func (h *TradeHandler) Buy(c echo.Context) error {
	var req dto.BuyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.respond.Error(c, err)
	}

	trade, err := h.trading.RecordTrade(c.Request().Context(), middleware.CurrentUser(c), req.Asset, req.Amount)
	if err != nil {
		return h.respond.Error(c, err)
	}

	confirmation := h.trading.Confirmation(trade)
	return c.JSON(http.StatusCreated, Response{
		Status:  "success",
		Message: confirmation,
		Data: dto.BuyResponse{
			Trade:        dto.NewTradeOutput(trade),
			Confirmation: confirmation,
		},
	})
}

// History returns the trades of the current user; anonymous callers get an empty list
// GET /api/trades/history
func (h *TradeHandler) History(c echo.Context) error {
	trades, err := h.trading.HistoryFor(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return h.respond.Error(c, err)
	}

	if len(trades) == 0 {
		return SuccessMessageResponse(c, h.respond.Text(c, "no_trading_history"), dto.NewTradeOutputs(trades))
	}
	return SuccessResponse(c, dto.NewTradeOutputs(trades))
}

// Export downloads the history of the current user as csv, json or xlsx
// GET /api/trades/export?format=csv
func (h *TradeHandler) Export(c echo.Context) error {
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return h.respond.Error(c, err)
	}

	trades, err := h.trading.HistoryFor(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return h.respond.Error(c, err)
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, format, export.RowsFromTrades(trades)); err != nil {
		return h.respond.Error(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", format.FileName()))
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}
