package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const serviceName = "cryptowise"

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type rootConfig struct {
	API       http.Handler // serves /api/*
	QuoteFeed http.Handler
	Store     Pinger // nil when state is in memory
	Logger    logrus.FieldLogger
	Now       func() time.Time
}

// newRootRouter builds the outer chi router: service descriptor, health,
// the quote feed socket, and the API mounted under /api
func newRootRouter(cfg rootConfig) http.Handler {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: cfg.Logger, NoColor: true}))

		r.Get("/", handleRoot)
		r.Get("/ws/quotes", cfg.QuoteFeed.ServeHTTP)
	})

	r.Get("/health", handleHealth(cfg.Store, cfg.Now))

	r.With(middleware.Timeout(60*time.Second)).Mount("/api", cfg.API)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to CryptoWise - Smart Crypto Learning & Trading",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":   "GET /health",
			"quotes":   "GET /api/market/quotes",
			"feed":     "GET /ws/quotes (WebSocket)",
			"register": "POST /api/auth/register",
			"login":    "POST /api/auth/login",
			"buy":      "POST /api/trades/buy",
			"history":  "GET /api/trades/history",
			"export":   "GET /api/trades/export?format=csv|json|xlsx",
			"topics":   "GET /api/content/topics",
		},
	})
}

func handleHealth(store Pinger, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeStatus, health := "memory", "healthy"
		status := http.StatusOK
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			storeStatus = "healthy"
			if err := store.Ping(ctx); err != nil {
				storeStatus, health = "unhealthy", "degraded"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, map[string]string{
			"status":    health,
			"service":   serviceName,
			"sessions":  storeStatus,
			"timestamp": now().Format(time.RFC3339),
		})
	}
}
