package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the upstream fund-data provider, and batch query limits.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	UPSTREAM_BASE_URL=https://fundapi.example.com
//	UPSTREAM_TIMEOUT_MS=5000
//	TREND_DAYS=30
//	RECENT_WINDOW=10
//	BATCH_MAX_CODES=20
//	BATCH_PARALLEL=5
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Upstream fund-data provider settings
	Batch    BatchConfig    // Batch query limits
	Trend    TrendConfig    // Trend analysis window settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines how the upstream fund-data provider is reached.
//
// Fields:
//   - BaseURL: root URL of the provider REST API.
//   - Timeout: per-request timeout; a fetch exceeding it is reported as unavailable.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// BatchConfig bounds the batch query endpoint.
//
// Fields:
//   - MaxCodes: maximum number of fund codes accepted in one batch request.
//   - Parallel: maximum number of funds fetched concurrently within a batch.
type BatchConfig struct {
	MaxCodes int
	Parallel int
}

// TrendConfig controls the trend-analysis window.
//
// Fields:
//   - Days: how many daily growth points are fetched from the provider.
//   - RecentWindow: how many of the most recent points are echoed back to clients.
type TrendConfig struct {
	Days         int
	RecentWindow int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing or out of range, validateConfig()
//     will terminate the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("UPSTREAM_BASE_URL", "https://fundapi.example.com")
	viper.SetDefault("UPSTREAM_TIMEOUT_MS", 5000)

	viper.SetDefault("TREND_DAYS", 30)
	viper.SetDefault("RECENT_WINDOW", 10)

	viper.SetDefault("BATCH_MAX_CODES", 20)
	viper.SetDefault("BATCH_PARALLEL", 5)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_MS")) * time.Millisecond,
		},
		Trend: TrendConfig{
			Days:         viper.GetInt("TREND_DAYS"),
			RecentWindow: viper.GetInt("RECENT_WINDOW"),
		},
		Batch: BatchConfig{
			MaxCodes: viper.GetInt("BATCH_MAX_CODES"),
			Parallel: viper.GetInt("BATCH_PARALLEL"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.BaseURL == "" {
		missing = append(missing, "UPSTREAM_BASE_URL")
	}
	if AppConfig.Upstream.Timeout <= 0 {
		missing = append(missing, "UPSTREAM_TIMEOUT_MS")
	}
	if AppConfig.Trend.Days <= 0 {
		missing = append(missing, "TREND_DAYS")
	}
	if AppConfig.Trend.RecentWindow <= 0 {
		missing = append(missing, "RECENT_WINDOW")
	}
	if AppConfig.Batch.MaxCodes <= 0 {
		missing = append(missing, "BATCH_MAX_CODES")
	}
	if AppConfig.Batch.Parallel <= 0 {
		missing = append(missing, "BATCH_PARALLEL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
