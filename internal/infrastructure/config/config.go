// Package config reads service settings from the environment and an optional
// config file using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const defaultConfigFile = "config.yml"

// Config is the resolved service configuration.
type Config struct {
	Port      string `mapstructure:"PORT"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	EstimatesTable     string `mapstructure:"ESTIMATES_TABLE"`
	SubscriptionsTable string `mapstructure:"SUBSCRIPTIONS_TABLE"`

	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	RedisAddr      string  `mapstructure:"REDIS_ADDR"`
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	CatalogFile             string  `mapstructure:"CATALOG_FILE"`
	FreeSavedEstimatesLimit int     `mapstructure:"FREE_SAVED_ESTIMATES_LIMIT"`
	ProMonthlyPrice         float64 `mapstructure:"PRO_MONTHLY_PRICE"`
	ProAnnualPrice          float64 `mapstructure:"PRO_ANNUAL_PRICE"`
}

var defaults = map[string]any{
	"PORT":                       "8080",
	"LOG_LEVEL":                  "info",
	"LOG_FORMAT":                 "json",
	"AWS_REGION":                 "us-east-1",
	"AWS_ACCESS_KEY_ID":          "local",
	"AWS_SECRET_ACCESS_KEY":      "local",
	"DYNAMODB_ENDPOINT":          "",
	"ESTIMATES_TABLE":            "estimates",
	"SUBSCRIPTIONS_TABLE":        "subscriptions",
	"MERCADOPAGO_ACCESS_TOKEN":   "",
	"PAYMENT_GATEWAY_MOCK":       false,
	"JWT_SECRET":                 "",
	"REDIS_ADDR":                 "",
	"RATE_LIMIT_RPS":             2.0,
	"RATE_LIMIT_BURST":           10,
	"CATALOG_FILE":               "",
	"FREE_SAVED_ESTIMATES_LIMIT": 3,
	"PRO_MONTHLY_PRICE":          9.99,
	"PRO_ANNUAL_PRICE":           99.0,
}

// Load resolves configuration. Precedence: environment, then the file named by
// CONFIG_FILE (or ./config.yml when present), then defaults.
func Load() (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	path := strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	required := path != ""
	if path == "" {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if required {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat))
	}
	if c.RateLimitRPS <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS))
	}
	if c.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst))
	}
	if c.FreeSavedEstimatesLimit <= 0 {
		errs = append(errs, fmt.Errorf("FREE_SAVED_ESTIMATES_LIMIT must be positive, got %d", c.FreeSavedEstimatesLimit))
	}
	if c.ProMonthlyPrice < 0 {
		errs = append(errs, fmt.Errorf("PRO_MONTHLY_PRICE must not be negative, got %v", c.ProMonthlyPrice))
	}
	if c.ProAnnualPrice < 0 {
		errs = append(errs, fmt.Errorf("PRO_ANNUAL_PRICE must not be negative, got %v", c.ProAnnualPrice))
	}
	if strings.TrimSpace(c.EstimatesTable) == "" || strings.TrimSpace(c.SubscriptionsTable) == "" {
		errs = append(errs, errors.New("table names must not be empty"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
