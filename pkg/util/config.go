package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// SetConfigDefaults registers defaults for every key the binaries read.
func SetConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("ROUTE_CACHE_SIZE", 1<<14)
	viper.SetDefault("STAT_WORKERS", 4)
	viper.SetDefault("LOG_LEVEL", "info")
}

// ReadConfig loads config.{yaml,json,toml,...} from configDir (./data/ when empty).
// A missing file is not an error: defaults and environment variables still apply.
func ReadConfig(configDir string) error {
	if configDir == "" {
		configDir = "./data/"
	}
	SetConfigDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
