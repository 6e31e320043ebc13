// Package ws pushes the quote board to WebSocket clients.
package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"cryptowise/internal/domain"
)

// DefaultInterval is the push period when none is configured
const DefaultInterval = 5 * time.Second

const writeWait = 10 * time.Second

// QuoteBoard supplies the current quotes
type QuoteBoard interface {
	Quotes() []domain.Quote
}

// BoardUpdate is one frame sent to clients
type BoardUpdate struct {
	Quotes    []domain.Quote `json:"quotes"`
	Timestamp time.Time      `json:"timestamp"`
}

// QuoteFeed serves the board over WebSocket, one full frame per tick
type QuoteFeed struct {
	board    QuoteBoard
	interval time.Duration
	upgrader websocket.Upgrader
	now      func() time.Time
	log      logrus.FieldLogger
}

// NewQuoteFeed creates a new QuoteFeed
func NewQuoteFeed(board QuoteBoard, interval time.Duration, log logrus.FieldLogger) *QuoteFeed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &QuoteFeed{
		board:    board,
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // read-only public data
			},
		},
		now: time.Now,
		log: log,
	}
}

// ServeHTTP upgrades the connection and pushes the board until the client
// goes away or the request context ends
func (f *QuoteFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	log := f.log.WithField("remote", r.RemoteAddr)
	log.Debug("Quote feed client connected")

	// Reads are only needed to notice the close frame
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		if err := f.push(conn); err != nil {
			log.WithError(err).Debug("Quote feed write failed")
			return
		}

		select {
		case <-ticker.C:
		case <-closed:
			log.Debug("Quote feed client disconnected")
			return
		case <-r.Context().Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		}
	}
}

func (f *QuoteFeed) push(conn *websocket.Conn) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(BoardUpdate{Quotes: f.board.Quotes(), Timestamp: f.now().UTC()})
}
