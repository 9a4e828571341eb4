package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Identity IdentityConfig
	Stripe   StripeConfig
	Mirror   MirrorConfig
	Storage  StorageConfig
	Logging  LoggingConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	FrontendURL     string
	Environment     string
}

// DatabaseConfig contains database configuration
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// For SQLite
	Path string
}

// IdentityConfig contains identity provider configuration
type IdentityConfig struct {
	BaseURL    string
	ServiceKey string
	JWTSecret  string
}

// StripeConfig contains payment gateway configuration
type StripeConfig struct {
	SecretKey       string
	WebhookSecret   string
	StarterPriceID  string
	ProPriceID      string
	CheckoutSuccess string
	CheckoutCancel  string
	PortalReturnURL string
}

// MirrorConfig contains tabular mirror store configuration. The mirror is
// optional; syncing is skipped when any of these are empty.
type MirrorConfig struct {
	APIKey    string
	BaseID    string
	TableName string
	BaseURL   string
	Timeout   time.Duration

	// ResyncInterval enables the periodic full re-sync sweep when positive
	ResyncInterval time.Duration
}

// StorageConfig contains file storage configuration
type StorageConfig struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors as it's optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			Name:            getEnv("DB_NAME", "moverhub"),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			Path:            getEnv("DB_PATH", "./data.db"),
		},
		Identity: IdentityConfig{
			BaseURL:    getEnv("IDENTITY_URL", ""),
			ServiceKey: getEnv("IDENTITY_SERVICE_KEY", ""),
			JWTSecret:  getEnv("IDENTITY_JWT_SECRET", ""),
		},
		Stripe: StripeConfig{
			SecretKey:       getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret:   getEnv("STRIPE_WEBHOOK_SECRET", ""),
			StarterPriceID:  getEnv("STRIPE_STARTER_PRICE_ID", ""),
			ProPriceID:      getEnv("STRIPE_PRO_PRICE_ID", ""),
			CheckoutSuccess: getEnv("STRIPE_SUCCESS_URL", "http://localhost:5173/dashboard?checkout=success"),
			CheckoutCancel:  getEnv("STRIPE_CANCEL_URL", "http://localhost:5173/pricing"),
			PortalReturnURL: getEnv("STRIPE_PORTAL_RETURN_URL", "http://localhost:5173/dashboard"),
		},
		Mirror: MirrorConfig{
			APIKey:         getEnv("MIRROR_API_KEY", ""),
			BaseID:         getEnv("MIRROR_BASE_ID", ""),
			TableName:      getEnv("MIRROR_TABLE_NAME", ""),
			BaseURL:        getEnv("MIRROR_BASE_URL", "https://api.airtable.com/v0"),
			Timeout:        getEnvAsDuration("MIRROR_TIMEOUT", 10*time.Second),
			ResyncInterval: getEnvAsDuration("MIRROR_RESYNC_INTERVAL", 0),
		},
		Storage: StorageConfig{
			BaseURL:    getEnv("STORAGE_URL", ""),
			ServiceKey: getEnv("STORAGE_SERVICE_KEY", ""),
			Bucket:     getEnv("STORAGE_BUCKET", "logos"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Server.Environment == "production" && c.Stripe.WebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET must be set in production")
	}

	return nil
}

// Configured reports whether all mirror credentials are present
func (m MirrorConfig) Configured() bool {
	return m.APIKey != "" && m.BaseID != "" && m.TableName != ""
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
