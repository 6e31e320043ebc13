package configs

import (
	"fmt"
	"os"
	"time"

	"cryptowise/internal/domain"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset outside production
const DevJWTSecret = "default-secret-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Locale    LocaleConfig
	Market    MarketConfig
	Scheduler SchedulerConfig
	Log       LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// IsProduction reports whether GO_ENV is production
func (s ServerConfig) IsProduction() bool {
	return s.Env == "production"
}

// RedisConfig holds Redis configuration. An empty URL keeps sessions in memory.
type RedisConfig struct {
	URL string
}

// AuthConfig holds session and credential configuration
type AuthConfig struct {
	JWTSecret      string
	JWTIssuer      string
	SessionTTL     time.Duration
	PasswordHasher string
}

// LocaleConfig holds language and time zone configuration
type LocaleConfig struct {
	DefaultLanguage string
	TimeZone        string
}

// MarketConfig holds the price board configuration
type MarketConfig struct {
	PriceTable        string // "Asset=Price,..."; empty keeps the demo board
	QuoteFeedInterval time.Duration
}

// SchedulerConfig holds cron configuration
type SchedulerConfig struct {
	SessionSweepSpec string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	sessionTTL, err := getDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	feedInterval, err := getDuration("QUOTE_FEED_INTERVAL", 5*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			JWTIssuer:      getEnv("JWT_ISSUER", "cryptowise"),
			SessionTTL:     sessionTTL,
			PasswordHasher: getEnv("PASSWORD_HASHER", "sha256"),
		},
		Locale: LocaleConfig{
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", domain.DefaultLanguage),
			TimeZone:        getEnv("TZ", ""),
		},
		Market: MarketConfig{
			PriceTable:        getEnv("PRICE_TABLE", ""),
			QuoteFeedInterval: feedInterval,
		},
		Scheduler: SchedulerConfig{
			SessionSweepSpec: getEnv("SESSION_SWEEP_SPEC", "0 */5 * * * *"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		if c.Server.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.Auth.JWTSecret = DevJWTSecret
	}
	if !domain.IsSupportedLanguage(c.Locale.DefaultLanguage) {
		return fmt.Errorf("DEFAULT_LANGUAGE %q is not one of %v", c.Locale.DefaultLanguage, domain.SupportedLanguages)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Market.QuoteFeedInterval <= 0 {
		return fmt.Errorf("QUOTE_FEED_INTERVAL must be positive")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a Go duration ("30m", "24h") from the environment
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
