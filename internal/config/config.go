package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting the service reads at startup.
type Config struct {
	AppEnv            string
	AppPort           string
	DatabaseDriver    string
	DatabaseDSN       string
	JWTSecret         string
	JWTExpiresIn      time.Duration
	RabbitMQURL       string
	OrderNumberPrefix string
	VerifyOrderTotals bool
	AuthRateLimit     float64
	AuthRateBurst     int
}

// IsDevelopment reports whether error details may be returned to clients.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// setDefaults registers the default value of every optional key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("APP_PORT", ":5000")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("ORDER_NUMBER_PREFIX", "AFZ")
	v.SetDefault("ORDER_VERIFY_TOTALS", true)
	v.SetDefault("AUTH_RATE_LIMIT", 2.0)
	v.SetDefault("AUTH_RATE_BURST", 5)
}

// Load reads an optional .env file, then the environment, and validates the
// result. DATABASE_DSN and JWT_SECRET are required.
func Load() (*Config, error) {
	// A missing .env is fine: production injects real environment variables.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppEnv:            strings.ToLower(v.GetString("APP_ENV")),
		AppPort:           v.GetString("APP_PORT"),
		DatabaseDriver:    strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTExpiresIn:      v.GetDuration("JWT_EXPIRES_IN"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		OrderNumberPrefix: v.GetString("ORDER_NUMBER_PREFIX"),
		VerifyOrderTotals: v.GetBool("ORDER_VERIFY_TOTALS"),
		AuthRateLimit:     v.GetFloat64("AUTH_RATE_LIMIT"),
		AuthRateBurst:     v.GetInt("AUTH_RATE_BURST"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseDriver != "postgres" && cfg.DatabaseDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	if cfg.JWTExpiresIn <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_IN must be a positive duration")
	}
	if !strings.HasPrefix(cfg.AppPort, ":") && !strings.Contains(cfg.AppPort, ":") {
		cfg.AppPort = ":" + cfg.AppPort
	}
	return cfg, nil
}
