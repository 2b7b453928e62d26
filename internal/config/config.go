package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Parser ParserConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds document upload and extraction limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MinTextChars  int   `mapstructure:"min_text_chars"`
	MaxTextChars  int   `mapstructure:"max_text_chars"`
}

// ParserProviderConfig holds settings for a single LLM review provider.
type ParserProviderConfig struct {
	Provider     string  `mapstructure:"provider"`
	APIKey       string  `mapstructure:"api_key"`
	DefaultModel string  `mapstructure:"default_model"`
	Temperature  float64 `mapstructure:"temperature"`
	TimeoutSecs  int     `mapstructure:"timeout_secs"`
}

// ParserConfig holds LLM review parser settings with multi-provider support.
type ParserConfig struct {
	// Legacy flat fields (backwards-compatible)
	Provider     string  `mapstructure:"provider"`
	APIKey       string  `mapstructure:"api_key"`
	DefaultModel string  `mapstructure:"default_model"`
	Temperature  float64 `mapstructure:"temperature"`
	TimeoutSecs  int     `mapstructure:"timeout_secs"`

	// Multi-provider fields
	Primary   ParserProviderConfig `mapstructure:"primary"`
	Secondary ParserProviderConfig `mapstructure:"secondary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (p *ParserConfig) PrimaryConfig() *ParserProviderConfig {
	if p.Primary.Provider != "" {
		return &p.Primary
	}
	return &ParserProviderConfig{
		Provider:     p.Provider,
		APIKey:       p.APIKey,
		DefaultModel: p.DefaultModel,
		Temperature:  p.Temperature,
		TimeoutSecs:  p.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (p *ParserConfig) SecondaryConfig() *ParserProviderConfig {
	if p.Secondary.Provider != "" {
		return &p.Secondary
	}
	return nil
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the CONTRACT_READER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CONTRACT_READER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 15)
	v.SetDefault("upload.min_text_chars", 20)
	v.SetDefault("upload.max_text_chars", 50000)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Parser defaults (legacy flat)
	v.SetDefault("parser.provider", "openai")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gpt-4o-mini")
	v.SetDefault("parser.temperature", 0.2)
	v.SetDefault("parser.timeout_secs", 90)

	// Parser primary/secondary defaults
	v.SetDefault("parser.primary.provider", "")
	v.SetDefault("parser.primary.api_key", "")
	v.SetDefault("parser.primary.default_model", "")
	v.SetDefault("parser.primary.temperature", 0.2)
	v.SetDefault("parser.primary.timeout_secs", 90)
	v.SetDefault("parser.secondary.provider", "")
	v.SetDefault("parser.secondary.api_key", "")
	v.SetDefault("parser.secondary.default_model", "")
	v.SetDefault("parser.secondary.temperature", 0.2)
	v.SetDefault("parser.secondary.timeout_secs", 90)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "CONTRACT_READER_SERVER_PORT",
		"server.read_timeout":            "CONTRACT_READER_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "CONTRACT_READER_SERVER_WRITE_TIMEOUT",
		"server.environment":             "CONTRACT_READER_SERVER_ENVIRONMENT",
		"upload.max_file_size_mb":        "CONTRACT_READER_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.min_text_chars":          "CONTRACT_READER_UPLOAD_MIN_TEXT_CHARS",
		"upload.max_text_chars":          "CONTRACT_READER_UPLOAD_MAX_TEXT_CHARS",
		"log.level":                      "CONTRACT_READER_LOG_LEVEL",
		"log.format":                     "CONTRACT_READER_LOG_FORMAT",
		"cors.allowed_origins":           "CONTRACT_READER_CORS_ALLOWED_ORIGINS",
		"parser.provider":                "CONTRACT_READER_PARSER_PROVIDER",
		"parser.api_key":                 "CONTRACT_READER_PARSER_API_KEY",
		"parser.default_model":           "CONTRACT_READER_PARSER_DEFAULT_MODEL",
		"parser.temperature":             "CONTRACT_READER_PARSER_TEMPERATURE",
		"parser.timeout_secs":            "CONTRACT_READER_PARSER_TIMEOUT_SECS",
		"parser.primary.provider":        "CONTRACT_READER_PARSER_PRIMARY_PROVIDER",
		"parser.primary.api_key":         "CONTRACT_READER_PARSER_PRIMARY_API_KEY",
		"parser.primary.default_model":   "CONTRACT_READER_PARSER_PRIMARY_DEFAULT_MODEL",
		"parser.primary.temperature":     "CONTRACT_READER_PARSER_PRIMARY_TEMPERATURE",
		"parser.primary.timeout_secs":    "CONTRACT_READER_PARSER_PRIMARY_TIMEOUT_SECS",
		"parser.secondary.provider":      "CONTRACT_READER_PARSER_SECONDARY_PROVIDER",
		"parser.secondary.api_key":       "CONTRACT_READER_PARSER_SECONDARY_API_KEY",
		"parser.secondary.default_model": "CONTRACT_READER_PARSER_SECONDARY_DEFAULT_MODEL",
		"parser.secondary.temperature":   "CONTRACT_READER_PARSER_SECONDARY_TEMPERATURE",
		"parser.secondary.timeout_secs":  "CONTRACT_READER_PARSER_SECONDARY_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CONTRACT_READER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CONTRACT_READER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MinTextChars:  v.GetInt("upload.min_text_chars"),
		MaxTextChars:  v.GetInt("upload.max_text_chars"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Parser = ParserConfig{
		Provider:     v.GetString("parser.provider"),
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		Temperature:  v.GetFloat64("parser.temperature"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
		Primary: ParserProviderConfig{
			Provider:     v.GetString("parser.primary.provider"),
			APIKey:       v.GetString("parser.primary.api_key"),
			DefaultModel: v.GetString("parser.primary.default_model"),
			Temperature:  v.GetFloat64("parser.primary.temperature"),
			TimeoutSecs:  v.GetInt("parser.primary.timeout_secs"),
		},
		Secondary: ParserProviderConfig{
			Provider:     v.GetString("parser.secondary.provider"),
			APIKey:       v.GetString("parser.secondary.api_key"),
			DefaultModel: v.GetString("parser.secondary.default_model"),
			Temperature:  v.GetFloat64("parser.secondary.temperature"),
			TimeoutSecs:  v.GetInt("parser.secondary.timeout_secs"),
		},
	}

	return cfg, nil
}
