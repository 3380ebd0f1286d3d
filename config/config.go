package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Catalog CatalogConfig
	Display DisplayConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
	FilePath          string
}

type CatalogConfig struct {
	// FixtureDir overrides the embedded fixture files when set.
	FixtureDir string
}

type DisplayConfig struct {
	Locale              string
	Currency            string
	ClockSkew           time.Duration
	DefaultBusinessSort string
	DefaultProductSort  string
	DefaultPriceMin     float64
	DefaultPriceMax     float64
	AnimationFrames     int
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8082"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
			FilePath:          getEnv("LOGGER_FILE_PATH", ""),
		},
		Catalog: CatalogConfig{
			FixtureDir: getEnv("CATALOG_FIXTURE_DIR", ""),
		},
		Display: DisplayConfig{
			Locale:              getEnv("DISPLAY_LOCALE", "en-US"),
			Currency:            strings.ToUpper(getEnv("DISPLAY_CURRENCY", "USD")),
			ClockSkew:           getEnvDuration("DISPLAY_CLOCK_SKEW", 2*time.Second),
			DefaultBusinessSort: getEnv("DISPLAY_DEFAULT_BUSINESS_SORT", "rating"),
			DefaultProductSort:  getEnv("DISPLAY_DEFAULT_PRODUCT_SORT", "relevant"),
			DefaultPriceMin:     getEnvFloat("DISPLAY_DEFAULT_PRICE_MIN", 0),
			DefaultPriceMax:     getEnvFloat("DISPLAY_DEFAULT_PRICE_MAX", 1000),
			AnimationFrames:     getEnvInt("DISPLAY_ANIMATION_FRAMES", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
