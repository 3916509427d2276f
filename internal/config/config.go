package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the API reads from the environment. Integration
// credentials are optional: when one is absent the corresponding feature
// reports "not configured" instead of failing at startup.
type Config struct {
	AppPort     string
	DatabaseURL string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	Printful PrintfulConfig
	Stripe   StripeConfig

	SelectionSyncURL string
	DefaultDomain    string
}

type PrintfulConfig struct {
	APIKey  string
	StoreID string
	BaseURL string
}

type StripeConfig struct {
	SecretKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Printful: PrintfulConfig{
			APIKey:  os.Getenv("PRINTFUL_API_KEY"),
			StoreID: os.Getenv("PRINTFUL_STORE_ID"),
			BaseURL: getEnv("PRINTFUL_BASE_URL", "https://api.printful.com"),
		},
		Stripe: StripeConfig{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		},
		SelectionSyncURL: os.Getenv("SELECTION_SYNC_URL"),
		DefaultDomain:    getEnv("DEFAULT_DOMAIN", "gitislife.com"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
