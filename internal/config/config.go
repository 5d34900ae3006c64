package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Assets AssetsConfig `mapstructure:"assets" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the generative model settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	TextModel    string `mapstructure:"text_model"     validate:"required"`
	ImageModel   string `mapstructure:"image_model"    validate:"required"`
}

// AssetsConfig locates the public directory served under /images and /data.
type AssetsConfig struct {
	PublicDir       string `mapstructure:"public_dir"       validate:"required"`
	GeneratedSubdir string `mapstructure:"generated_subdir" validate:"required"`
	DataSubdir      string `mapstructure:"data_subdir"      validate:"required"`
}
