package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins        []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL           string        `mapstructure:"DATABASE_URL"`
	HTTPServerAddress     string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey        string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration   time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RedisServerAddress    string        `mapstructure:"REDIS_SERVER_ADDRESS"`
	OSRMBaseURL           string        `mapstructure:"OSRM_BASE_URL"`
	NominatimBaseURL      string        `mapstructure:"NOMINATIM_BASE_URL"`
	RoutingRequestTimeout time.Duration `mapstructure:"ROUTING_REQUEST_TIMEOUT"`
	StockRepairInterval   time.Duration `mapstructure:"STOCK_REPAIR_INTERVAL"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	viper.SetDefault("OSRM_BASE_URL", "https://router.project-osrm.org")
	viper.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("ROUTING_REQUEST_TIMEOUT", "4s")
	viper.SetDefault("STOCK_REPAIR_INTERVAL", "5m")

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}

	return nil
}
