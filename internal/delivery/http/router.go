package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	custommiddleware "cryptowise/internal/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	MarketHandler   *MarketHandler
	TradeHandler    *TradeHandler
	ReminderHandler *ReminderHandler
	ContentHandler  *ContentHandler
	Responder       *Responder
	Sessions        custommiddleware.SessionResolver
	Logger          logrus.FieldLogger
}

// NewEcho creates the API server with all routes registered
func NewEcho(config *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	SetupRoutes(e, config)
	return e
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	e.HTTPErrorHandler = config.Responder.HandleHTTPError
	e.Validator = NewRequestValidator()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging for health probes to reduce noise
			return c.Request().URL.Path == "/health"
		},
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := config.Logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())

	requireAuth := custommiddleware.RequireAuth(config.Sessions)
	optionalAuth := custommiddleware.OptionalAuth(config.Sessions)

	// API group
	api := e.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register, optionalAuth)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout, optionalAuth)
	}

	// User routes (protected)
	user := api.Group("/user", requireAuth)
	{
		user.GET("/me", config.UserHandler.GetMe)
		user.PUT("/settings/language", config.UserHandler.SetLanguage)
	}

	market := api.Group("/market")
	{
		market.GET("/quotes", config.MarketHandler.GetQuotes)
		market.GET("/quotes/:asset", config.MarketHandler.GetQuote)
	}

	trades := api.Group("/trades")
	{
		trades.POST("/buy", config.TradeHandler.Buy, requireAuth)
		trades.GET("/history", config.TradeHandler.History, optionalAuth)
		trades.GET("/export", config.TradeHandler.Export, optionalAuth)
	}

	reminders := api.Group("/reminders")
	{
		reminders.POST("", config.ReminderHandler.Create, requireAuth)
		reminders.GET("", config.ReminderHandler.List, optionalAuth)
	}

	contentGroup := api.Group("/content", optionalAuth)
	{
		contentGroup.GET("/languages", config.ContentHandler.Languages)
		contentGroup.GET("/i18n", config.ContentHandler.Translations)
		contentGroup.GET("/topics", config.ContentHandler.Topics)
		contentGroup.GET("/topics/:topic", config.ContentHandler.Topic)
	}
}
