package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Store    StoreConfig
	Security SecurityConfig
	Log      LogConfig
	Console  ConsoleConfig
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ConsoleConfig struct {
	Color bool `mapstructure:"color"`
}

// LoadConfig reads an optional config.yaml, with defaults for every key so
// the application runs without one. Environment variables override file
// values.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("store.path", "data.json")
	viper.SetDefault("security.bcrypt_cost", 10)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("console.color", true)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
