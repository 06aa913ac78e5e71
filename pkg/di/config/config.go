package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port              int
	Timeout           time.Duration
	DBPath            string
	FootprintHalfSize float64
}

// New reads config.yaml when present. the environment, .env included, overrides it.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("DB_PATH", "zonemap.db")
	viper.SetDefault("FOOTPRINT_HALF_SIZE", 100.0)

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{
		Port:              viper.GetInt("API_PORT"),
		Timeout:           viper.GetDuration("API_TIMEOUT"),
		DBPath:            viper.GetString("DB_PATH"),
		FootprintHalfSize: viper.GetFloat64("FOOTPRINT_HALF_SIZE"),
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, errors.New("API_PORT must be between 1 and 65535")
	}
	if config.DBPath == "" {
		return nil, errors.New("DB_PATH must not be empty")
	}
	return config, nil
}
