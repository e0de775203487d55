package config

import (
	"errors"
	"fmt"
	"io/fs"

	"doctor-directory/pkg/validator"

	"github.com/spf13/viper"
)

// DefaultSourceURL is the static JSON file the directory is published at.
const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App    AppConfig
	Log    LogConfig
	Source SourceConfig
	CORS   CORSConfig
}

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	Env      string `validate:"required"`
	PagePath string `validate:"required,startswith=/"`
}

type LogConfig struct {
	Level string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
}

type SourceConfig struct {
	URL string `validate:"required,url"`
}

type CORSConfig struct {
	AllowedOrigin string `validate:"required"`
}

func LoadConfig() (*Config, error) {
	return Load(".env")
}

// Load reads configuration from the given dotenv file and the environment.
// A missing file is fine; environment variables and defaults still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PAGE_PATH", "/")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOCTORS_SOURCE_URL", DefaultSourceURL)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			PagePath: v.GetString("APP_PAGE_PATH"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Source: SourceConfig{
			URL: v.GetString("DOCTORS_SOURCE_URL"),
		},
		CORS: CORSConfig{
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
	}

	cv := validator.NewValidator()
	if err := cv.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid config: %v", cv.FormatValidationErrors(err))
	}

	return config, nil
}
