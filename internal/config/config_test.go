package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigTest(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Chdir(dir)

	for _, key := range []string{
		"NEWSBREAK_ACCESS_TOKEN", "MCP_TRANSPORT", "NEWSBREAK_TIMEOUT",
		"NEWSBREAK_RATE_LIMIT_CAPACITY", "CORS_ALLOWED_ORIGINS", "PORT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	return dir
}

func TestNewConfig_Defaults(t *testing.T) {
	setupConfigTest(t)

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, TransportStdio, cfg.Server.Transport)
	assert.Equal(t, "https://business.newsbreak.com/business-api/v1", cfg.NewsBreak.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.NewsBreak.Timeout)
	assert.Equal(t, 10, cfg.NewsBreak.RateLimitCapacity)
	assert.Equal(t, 10.0, cfg.NewsBreak.RateLimitPerSecond)
	assert.Equal(t, 3, cfg.NewsBreak.RetryMaxAttempts)
	assert.Equal(t, 300*time.Millisecond, cfg.NewsBreak.RetryBackoffBase)
	assert.Empty(t, cfg.NewsBreak.AccessToken)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	setupConfigTest(t)
	t.Setenv("NEWSBREAK_ACCESS_TOKEN", " env-token ")
	t.Setenv("MCP_TRANSPORT", "HTTP")
	t.Setenv("NEWSBREAK_TIMEOUT", "5s")
	t.Setenv("NEWSBREAK_RATE_LIMIT_CAPACITY", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com,https://b.com")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.NewsBreak.AccessToken)
	assert.Equal(t, TransportHTTP, cfg.Server.Transport)
	assert.Equal(t, 5*time.Second, cfg.NewsBreak.Timeout)
	assert.Equal(t, 3, cfg.NewsBreak.RateLimitCapacity)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.Server.AllowedOrigins)
}

func TestNewConfig_DotEnvFile(t *testing.T) {
	dir := setupConfigTest(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NEWSBREAK_ACCESS_TOKEN=file-token\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("NEWSBREAK_ACCESS_TOKEN") })

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.NewsBreak.AccessToken)
}

func TestNewConfig_FlagWinsOverEnvironment(t *testing.T) {
	setupConfigTest(t)
	t.Setenv("NEWSBREAK_ACCESS_TOKEN", "env-token")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("access-token", "", "")
	require.NoError(t, flags.Parse([]string{"--access-token", "flag-token"}))
	require.NoError(t, viper.BindPFlag("NEWSBREAK_ACCESS_TOKEN", flags.Lookup("access-token")))

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "flag-token", cfg.NewsBreak.AccessToken)
}

func TestNewConfig_UnsetFlagKeepsEnvironment(t *testing.T) {
	setupConfigTest(t)
	t.Setenv("NEWSBREAK_ACCESS_TOKEN", "env-token")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("access-token", "", "")
	require.NoError(t, flags.Parse(nil))
	require.NoError(t, viper.BindPFlag("NEWSBREAK_ACCESS_TOKEN", flags.Lookup("access-token")))

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.NewsBreak.AccessToken)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: Server{Transport: TransportStdio},
			NewsBreak: NewsBreak{
				Timeout:            time.Second,
				RateLimitCapacity:  1,
				RateLimitPerSecond: 1,
				RetryMaxAttempts:   1,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Configuração válida", mutate: func(c *Config) {}},
		{name: "Transporte desconhecido", mutate: func(c *Config) { c.Server.Transport = "sse" }, wantErr: true},
		{name: "Capacidade zero", mutate: func(c *Config) { c.NewsBreak.RateLimitCapacity = 0 }, wantErr: true},
		{name: "Taxa negativa", mutate: func(c *Config) { c.NewsBreak.RateLimitPerSecond = -1 }, wantErr: true},
		{name: "Sem tentativas", mutate: func(c *Config) { c.NewsBreak.RetryMaxAttempts = 0 }, wantErr: true},
		{name: "Timeout zero", mutate: func(c *Config) { c.NewsBreak.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}
