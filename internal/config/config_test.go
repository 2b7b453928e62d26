package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralphreevencarandang/contract-reader/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, int64(15), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, 20, cfg.Upload.MinTextChars)
	assert.Equal(t, 50000, cfg.Upload.MaxTextChars)

	assert.Equal(t, "openai", cfg.Parser.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Parser.DefaultModel)
	assert.Equal(t, 0.2, cfg.Parser.Temperature)
	assert.Equal(t, 90, cfg.Parser.TimeoutSecs)

	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONTRACT_READER_SERVER_PORT", ":9090")
	t.Setenv("CONTRACT_READER_SERVER_ENVIRONMENT", "production")
	t.Setenv("CONTRACT_READER_UPLOAD_MAX_FILE_SIZE_MB", "5")
	t.Setenv("CONTRACT_READER_UPLOAD_MAX_TEXT_CHARS", "10000")
	t.Setenv("CONTRACT_READER_PARSER_PROVIDER", "claude")
	t.Setenv("CONTRACT_READER_PARSER_API_KEY", "sk-test")
	t.Setenv("CONTRACT_READER_PARSER_TEMPERATURE", "0.7")
	t.Setenv("CONTRACT_READER_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, int64(5), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, 10000, cfg.Upload.MaxTextChars)
	assert.Equal(t, "claude", cfg.Parser.Provider)
	assert.Equal(t, "sk-test", cfg.Parser.APIKey)
	assert.Equal(t, 0.7, cfg.Parser.Temperature)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("CONTRACT_READER_SERVER_PORT", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestParserConfig_PrimaryConfig_LegacyFallback(t *testing.T) {
	p := &config.ParserConfig{
		Provider:     "openai",
		APIKey:       "sk-legacy",
		DefaultModel: "gpt-4o-mini",
		Temperature:  0.2,
		TimeoutSecs:  90,
	}

	primary := p.PrimaryConfig()

	require.NotNil(t, primary)
	assert.Equal(t, "openai", primary.Provider)
	assert.Equal(t, "sk-legacy", primary.APIKey)
	assert.Equal(t, "gpt-4o-mini", primary.DefaultModel)
}

func TestParserConfig_PrimaryConfig_ExplicitPrimaryWins(t *testing.T) {
	p := &config.ParserConfig{
		Provider: "openai",
		APIKey:   "sk-legacy",
		Primary: config.ParserProviderConfig{
			Provider: "claude",
			APIKey:   "sk-primary",
		},
	}

	primary := p.PrimaryConfig()

	require.NotNil(t, primary)
	assert.Equal(t, "claude", primary.Provider)
	assert.Equal(t, "sk-primary", primary.APIKey)
}

func TestParserConfig_SecondaryConfig(t *testing.T) {
	p := &config.ParserConfig{}
	assert.Nil(t, p.SecondaryConfig())

	p.Secondary = config.ParserProviderConfig{Provider: "claude", APIKey: "sk-secondary"}
	secondary := p.SecondaryConfig()
	require.NotNil(t, secondary)
	assert.Equal(t, "claude", secondary.Provider)
}

func TestLoad_MultiProviderEnv(t *testing.T) {
	t.Setenv("CONTRACT_READER_PARSER_PRIMARY_PROVIDER", "openai")
	t.Setenv("CONTRACT_READER_PARSER_PRIMARY_API_KEY", "sk-p")
	t.Setenv("CONTRACT_READER_PARSER_SECONDARY_PROVIDER", "claude")
	t.Setenv("CONTRACT_READER_PARSER_SECONDARY_API_KEY", "sk-s")

	cfg, err := config.Load()
	require.NoError(t, err)

	primary := cfg.Parser.PrimaryConfig()
	require.NotNil(t, primary)
	assert.Equal(t, "openai", primary.Provider)
	assert.Equal(t, "sk-p", primary.APIKey)

	secondary := cfg.Parser.SecondaryConfig()
	require.NotNil(t, secondary)
	assert.Equal(t, "claude", secondary.Provider)
	assert.Equal(t, "sk-s", secondary.APIKey)
}
