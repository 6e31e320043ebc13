package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestRouter(store Pinger) http.Handler {
	log, _ := logtest.NewNullLogger()
	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"path": r.URL.Path})
	})
	feed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	return newRootRouter(rootConfig{
		API:       api,
		QuoteFeed: feed,
		Store:     store,
		Logger:    log,
		Now:       func() time.Time { return testNow },
	})
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRootDescriptor(t *testing.T) {
	rec, body := get(t, newTestRouter(nil), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["message"], "CryptoWise")
	endpoints, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "POST /api/trades/buy", endpoints["buy"])
}

func TestHealth(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		rec, body := get(t, newTestRouter(nil), "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "memory", body["sessions"])
		assert.Equal(t, "2024-05-01T10:00:00Z", body["timestamp"])
	})

	t.Run("store reachable", func(t *testing.T) {
		store := pingFunc(func(context.Context) error { return nil })
		rec, body := get(t, newTestRouter(store), "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", body["sessions"])
	})

	t.Run("store down", func(t *testing.T) {
		store := pingFunc(func(context.Context) error { return errors.New("connection refused") })
		rec, body := get(t, newTestRouter(store), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "unhealthy", body["sessions"])
	})
}

func TestAPIMountKeepsPrefix(t *testing.T) {
	rec, body := get(t, newTestRouter(nil), "/api/market/quotes")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/market/quotes", body["path"])
}

func TestQuoteFeedRoute(t *testing.T) {
	rec, _ := get(t, newTestRouter(nil), "/ws/quotes")
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	rec, _ := get(t, newTestRouter(nil), "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
