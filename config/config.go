package config

import (
	"errors"
	"log"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	FRANKFURTER_BASE_URL=https://api.frankfurter.dev
//	BRAPI_BASE_URL=https://brapi.dev/api
//	BRAPI_API_KEY=your-token
//	UPSTREAM_TIMEOUT=10s
//	TICKER_CACHE_TTL=3h
//	CONVERSION_CACHE_TTL=5m
//	STOCKS_CACHE_TTL=15m
//	RESPONSE_CACHE_MAX_ENTRIES=500
//	TICKER_WARMUP_SPEC=@every 3h
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Tickers  TickerConfig
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string `mapstructure:"SERVER_PORT" validate:"required,numeric"`
}

// UpstreamConfig describes the two providers.
//
// Fields:
//   - FrankfurterURL: base URL of the currency-rate API.
//   - BrapiURL: base URL of the B3 stock API.
//   - BrapiAPIKey: bearer token for brapi. Optional at startup; stock
//     endpoints answer 503 while it is missing.
//   - Timeout: per-call timeout applied to both providers.
type UpstreamConfig struct {
	FrankfurterURL string        `mapstructure:"FRANKFURTER_BASE_URL" validate:"required,url"`
	BrapiURL       string        `mapstructure:"BRAPI_BASE_URL" validate:"required,url"`
	BrapiAPIKey    string        `mapstructure:"BRAPI_API_KEY"`
	Timeout        time.Duration `mapstructure:"UPSTREAM_TIMEOUT" validate:"gt=0"`
}

// CacheConfig sets the response cache lifetimes and the per-cache entry
// bound. A zero TTL disables that cache.
type CacheConfig struct {
	ConversionTTL time.Duration `mapstructure:"CONVERSION_CACHE_TTL" validate:"gte=0"`
	StocksTTL     time.Duration `mapstructure:"STOCKS_CACHE_TTL" validate:"gte=0"`
	MaxEntries    int           `mapstructure:"RESPONSE_CACHE_MAX_ENTRIES" validate:"gt=0"`
}

// TickerConfig controls the ticker directory.
type TickerConfig struct {
	CacheTTL   time.Duration `mapstructure:"TICKER_CACHE_TTL" validate:"gt=0"`
	WarmupSpec string        `mapstructure:"TICKER_WARMUP_SPEC"` // "off" disables the job
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// validate reports failed fields by their environment key.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
	return v
}()

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If a value is missing or malformed, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("FRANKFURTER_BASE_URL", "https://api.frankfurter.dev")
	viper.SetDefault("BRAPI_BASE_URL", "https://brapi.dev/api")
	viper.SetDefault("BRAPI_API_KEY", "")
	viper.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)

	viper.SetDefault("CONVERSION_CACHE_TTL", 5*time.Minute)
	viper.SetDefault("STOCKS_CACHE_TTL", 15*time.Minute)
	viper.SetDefault("RESPONSE_CACHE_MAX_ENTRIES", 500)

	viper.SetDefault("TICKER_CACHE_TTL", 3*time.Hour)
	viper.SetDefault("TICKER_WARMUP_SPEC", "@every 3h")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			FrankfurterURL: viper.GetString("FRANKFURTER_BASE_URL"),
			BrapiURL:       viper.GetString("BRAPI_BASE_URL"),
			BrapiAPIKey:    viper.GetString("BRAPI_API_KEY"),
			Timeout:        viper.GetDuration("UPSTREAM_TIMEOUT"),
		},
		Cache: CacheConfig{
			ConversionTTL: viper.GetDuration("CONVERSION_CACHE_TTL"),
			StocksTTL:     viper.GetDuration("STOCKS_CACHE_TTL"),
			MaxEntries:    viper.GetInt("RESPONSE_CACHE_MAX_ENTRIES"),
		},
		Tickers: TickerConfig{
			CacheTTL:   viper.GetDuration("TICKER_CACHE_TTL"),
			WarmupSpec: viper.GetString("TICKER_WARMUP_SPEC"),
		},
	}

	validateConfig()
}

// validateConfig terminates the application when AppConfig is invalid.
func validateConfig() {
	if invalid := invalidKeys(AppConfig); len(invalid) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", invalid)
	}
}

// invalidKeys returns the environment keys whose values fail validation.
func invalidKeys(cfg Config) []string {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	keys := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		keys = append(keys, fe.Field())
	}
	return keys
}
