package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptowise/internal/domain"
)

type staticBoard []domain.Quote

func (b staticBoard) Quotes() []domain.Quote { return b }

func TestQuoteFeed_PushesBoard(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	feed := NewQuoteFeed(staticBoard(domain.DefaultPriceTable()), 10*time.Millisecond, log)

	srv := httptest.NewServer(feed)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	for i := 0; i < 2; i++ {
		var update BoardUpdate
		require.NoError(t, conn.ReadJSON(&update))
		require.Len(t, update.Quotes, 4)
		assert.Equal(t, domain.AssetBitcoin, update.Quotes[0].Asset)
		assert.Equal(t, "64000", update.Quotes[0].Price.String())
		assert.False(t, update.Timestamp.IsZero())
	}
}

func TestQuoteFeed_RejectsPlainHTTP(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	feed := NewQuoteFeed(staticBoard(nil), 0, log)

	rec := httptest.NewRecorder()
	feed.ServeHTTP(rec, httptest.NewRequest("GET", "/ws/quotes", nil))
	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, DefaultInterval, feed.interval)
}
