// Package config loads gateway settings from the environment.
package config

import (
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the gateway.
type Config struct {
	Port     int
	LogLevel string
	GinMode  string
}

// LoadConfig reads configuration from the environment, falling back to a
// .env file when present.
func LoadConfig() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env file is fine; the environment still applies.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GIN_MODE", "release")

	return &Config{
		Port:     viper.GetInt("PORT"),
		LogLevel: viper.GetString("LOG_LEVEL"),
		GinMode:  viper.GetString("GIN_MODE"),
	}
}
