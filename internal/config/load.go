package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "DUALCLASS"

// Default values applied before files and environment are read.
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultTextModel       = "gemini-3-pro-preview"
	DefaultImageModel      = "gemini-3-pro-image-preview"
	DefaultPublicDir       = "public"
	DefaultGeneratedSubdir = "images/generated"
	DefaultDataSubdir      = "data"
)

// Load configuration from environment variables and optionally a
// config.yaml in the working directory. Environment variables take
// precedence over values from config files.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit config file. An empty path looks for
// an optional config.yaml in the working directory; a non-empty path must
// exist.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("llm.text_model", DefaultTextModel)
	v.SetDefault("llm.image_model", DefaultImageModel)
	v.SetDefault("assets.public_dir", DefaultPublicDir)
	v.SetDefault("assets.generated_subdir", DefaultGeneratedSubdir)
	v.SetDefault("assets.data_subdir", DefaultDataSubdir)
	// Keys without a default must be registered for Unmarshal to see
	// their environment values.
	v.SetDefault("llm.gemini_api_key", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The key name used by the Gemini tooling works without the prefix.
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding gemini api key: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
