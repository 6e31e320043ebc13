package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"cryptowise/configs"
	deliveryhttp "cryptowise/internal/delivery/http"
	"cryptowise/internal/delivery/ws"
	"cryptowise/internal/domain"
	"cryptowise/internal/infra"
	"cryptowise/internal/middleware"
	"cryptowise/internal/repository"
	"cryptowise/internal/service"
	"cryptowise/internal/usecase"
	"cryptowise/internal/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, using environment variables")
	}

	// Load configuration
	cfg, err := configs.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.Fatalf("Failed to build logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := utils.SystemClock(utils.LoadLocation(cfg.Locale.TimeZone))

	// Session store: Redis when configured, otherwise process memory
	var (
		sessionRepo domain.SessionRepository
		store       Pinger
	)
	if cfg.Redis.URL != "" {
		client, err := infra.NewRedis(ctx, cfg.Redis.URL, logger)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer client.Close()

		sessionRepo = repository.NewRedisSessionRepository(client)
		store = redisPinger(client)
	} else {
		sessionRepo = repository.NewSessionRepository()
		logger.Warn("REDIS_URL not set, sessions are kept in memory")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	tradeRepo := repository.NewTradeRepository()
	reminderRepo := repository.NewReminderRepository()

	hasher, err := service.NewPasswordHasher(cfg.Auth.PasswordHasher)
	if err != nil {
		logger.Fatalf("Invalid PASSWORD_HASHER: %v", err)
	}
	if cfg.Auth.PasswordHasher != service.HasherBcrypt {
		logger.Warn("Passwords are stored as unsalted SHA-256 digests; set PASSWORD_HASHER=bcrypt outside of demos")
	}

	priceTable, err := service.ParsePriceTable(cfg.Market.PriceTable)
	if err != nil {
		logger.Fatalf("Invalid PRICE_TABLE: %v", err)
	}

	// Initialize services
	tokens := middleware.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, clock)
	accounts := service.NewAccountService(userRepo, hasher, cfg.Locale.DefaultLanguage, clock, logger)
	sessions := service.NewSessionService(accounts, sessionRepo, tokens, cfg.Auth.SessionTTL, clock, logger)
	prices := service.NewMarketPriceService(priceTable)
	broker := service.NewVirtualBrokerService(prices)
	reminders := service.NewReminderService(reminderRepo, clock, logger)

	// Initialize trading service
	trading := usecase.NewTradingService(tradeRepo, broker, clock, logger)

	// Session sweep
	scheduler := infra.NewScheduler(sessions, cfg.Scheduler.SessionSweepSpec, logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// HTTP API
	respond := deliveryhttp.NewResponder(cfg.Locale.DefaultLanguage, logger)
	api := deliveryhttp.NewEcho(&deliveryhttp.RouterConfig{
		AuthHandler:     deliveryhttp.NewAuthHandler(accounts, sessions, respond, cfg.Server.IsProduction()),
		UserHandler:     deliveryhttp.NewUserHandler(accounts, respond),
		MarketHandler:   deliveryhttp.NewMarketHandler(prices, respond),
		TradeHandler:    deliveryhttp.NewTradeHandler(trading, respond),
		ReminderHandler: deliveryhttp.NewReminderHandler(reminders, respond),
		ContentHandler:  deliveryhttp.NewContentHandler(respond),
		Responder:       respond,
		Sessions:        sessions,
		Logger:          logger,
	})

	router := newRootRouter(rootConfig{
		API:       api,
		QuoteFeed: ws.NewQuoteFeed(prices, cfg.Market.QuoteFeedInterval, logger),
		Store:     store,
		Logger:    logger,
		Now:       clock,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	// Run server in goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"addr":     addr,
			"env":      cfg.Server.Env,
			"assets":   prices.Assets(),
			"language": cfg.Locale.DefaultLanguage,
		}).Info("CryptoWise starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
		return
	}

	logger.Info("Server exited gracefully")
}

func redisPinger(client *redis.Client) Pinger {
	return pingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}
