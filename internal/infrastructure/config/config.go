package config

import (
	"errors"
	"strings"
	"time"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/infrastructure/payments"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Journal  JournalConfig
	Gateways GatewaysConfig
}

type ServerConfig struct {
	Port     int
	Env      string // "development", "production"
	LogLevel string
}

type JournalConfig struct {
	Enabled   bool
	Table     string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type GatewaysConfig struct {
	// TestMode flags every gateway as test unless <GATEWAY>_TEST says otherwise.
	TestMode bool
	// Mock swaps every gateway for the bogus one.
	Mock bool
	// Timeout bounds a single gateway round trip.
	Timeout time.Duration
	// Credentials per gateway name, only with the keys that are actually set.
	Credentials map[string]entities.Options
}

// optionalCredentials are read for every gateway on top of its required ones.
var optionalCredentials = []string{"currency", "test", "merchant_account_id"}

// Load reads configuration from .env, an optional config.yaml and environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if missing)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GATEWAY_TEST_MODE", true)
	v.SetDefault("PAYMENT_GATEWAY_MOCK", "false")
	v.SetDefault("GATEWAY_TIMEOUT", "30s")
	v.SetDefault("JOURNAL_ENABLED", false)
	v.SetDefault("TRANSACTIONS_TABLE", "transactions")
	v.SetDefault("AWS_REGION", "us-east-1")

	cfg := &Config{
		Server: ServerConfig{
			Port:     v.GetInt("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Journal: JournalConfig{
			Enabled:   v.GetBool("JOURNAL_ENABLED"),
			Table:     v.GetString("TRANSACTIONS_TABLE"),
			Region:    v.GetString("AWS_REGION"),
			Endpoint:  v.GetString("DYNAMODB_ENDPOINT"),
			AccessKey: v.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		Gateways: GatewaysConfig{
			TestMode:    v.GetBool("GATEWAY_TEST_MODE"),
			Mock:        mockEnabled(v.GetString("PAYMENT_GATEWAY_MOCK")),
			Timeout:     v.GetDuration("GATEWAY_TIMEOUT"),
			Credentials: map[string]entities.Options{},
		},
	}

	for _, name := range payments.SupportedGateways() {
		required, _ := payments.RequiredCredentials(name)
		creds := entities.Options{}
		for _, key := range append(append([]string{}, required...), optionalCredentials...) {
			envKey := strings.ToUpper(name + "_" + key)
			if s := strings.TrimSpace(v.GetString(envKey)); s != "" {
				creds[key] = s
			}
		}
		if !creds.Has("test") {
			creds["test"] = cfg.Gateways.TestMode
		}
		cfg.Gateways.Credentials[name] = creds
	}

	return cfg
}

// mockEnabled accepts the usual truthy spellings plus "mock".
func mockEnabled(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// Configured reports whether every required credential of the gateway is present.
func (g GatewaysConfig) Configured(name string) bool {
	required, ok := payments.RequiredCredentials(name)
	if !ok {
		return false
	}
	return g.Credentials[strings.ToLower(name)].Require(required...) == nil
}
