package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// FrontendURL is the allowed CORS origin; "*" allows any origin.
	FrontendURL string

	// DBQueryTimeout bounds every individual store call.
	DBQueryTimeout time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "3004")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_URL", "*")
	viper.SetDefault("DB_QUERY_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendURL = viper.GetString("FRONTEND_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	timeoutStr := viper.GetString("DB_QUERY_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid DB_QUERY_TIMEOUT %q, defaulting to 5s\n", timeoutStr)
		timeout = 5 * time.Second
	}
	cfg.DBQueryTimeout = timeout

	return cfg, nil
}
