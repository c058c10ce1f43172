package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
)

// Favorites backends.
const (
	BackendPebble   = "pebble"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Auth providers.
const (
	AuthFirebase = "firebase"
	AuthLocal    = "local"
)

// Config holds runtime configuration for the storefront.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	AppAddr         string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout  time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"60s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	ShopAPIBaseURL string        `envconfig:"SHOP_API_BASE_URL" required:"true"`
	ShopAPIStore   string        `envconfig:"SHOP_API_STORE"`
	ShopAPITimeout time.Duration `envconfig:"SHOP_API_TIMEOUT" default:"10s"`

	SaleDiscount     string `envconfig:"STOREFRONT_SALE_DISCOUNT" default:"0.85"`
	FavoritesBackend string `envconfig:"STOREFRONT_FAVORITES_BACKEND" default:"pebble"`
	DataDir          string `envconfig:"STOREFRONT_DATA_DIR" default:"./data"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	RedisAddr   string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`

	AuthProvider    string `envconfig:"AUTH_PROVIDER" default:"local"`
	FirebaseAPIKey  string `envconfig:"FIREBASE_API_KEY"`
	FirebaseAuthURL string `envconfig:"FIREBASE_AUTH_URL"`
	JWTSecret       string `envconfig:"JWT_SECRET"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"20"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that depend on each other.
func (c *Config) Validate() error {
	if c.ShopAPIBaseURL == "" {
		return errors.New("SHOP_API_BASE_URL is required")
	}
	if _, err := catalog.NewPricing(c.SaleDiscount); err != nil {
		return err
	}
	switch c.FavoritesBackend {
	case BackendPebble, BackendRedis:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres favorites backend")
		}
	default:
		return fmt.Errorf("unknown favorites backend %q", c.FavoritesBackend)
	}
	switch c.AuthProvider {
	case AuthFirebase:
		if c.FirebaseAPIKey == "" {
			return errors.New("FIREBASE_API_KEY is required for firebase auth")
		}
	case AuthLocal:
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET is required for local auth")
		}
	default:
		return fmt.Errorf("unknown auth provider %q", c.AuthProvider)
	}
	if c.RateLimitPerMinute <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// IsProduction returns true when the storefront runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
