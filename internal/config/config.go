package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	NewsBreak  NewsBreak  `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	HTTPLimits HTTPLimits `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	Transport      string   `mapstructure:"mcp_transport"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type NewsBreak struct {
	BaseURL            string        `mapstructure:"newsbreak_base_url"`
	AccessToken        string        `mapstructure:"newsbreak_access_token"`
	Timeout            time.Duration `mapstructure:"newsbreak_timeout"`
	RateLimitCapacity  int           `mapstructure:"newsbreak_rate_limit_capacity"`
	RateLimitPerSecond float64       `mapstructure:"newsbreak_rate_limit_per_second"`
	RetryMaxAttempts   int           `mapstructure:"newsbreak_retry_max_attempts"`
	RetryBackoffBase   time.Duration `mapstructure:"newsbreak_retry_backoff_base"`
}

// Auth protege o transporte HTTP. Sem segredo a autenticação fica desligada.
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// HTTPLimits limita requisições por cliente no transporte HTTP
type HTTPLimits struct {
	RateLimit float64 `mapstructure:"http_rate_limit"`
	Burst     int     `mapstructure:"http_rate_burst"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("MCP_TRANSPORT", TransportStdio)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("NEWSBREAK_BASE_URL", "https://business.newsbreak.com/business-api/v1")
	viper.SetDefault("NEWSBREAK_ACCESS_TOKEN", "")
	viper.SetDefault("NEWSBREAK_TIMEOUT", "30s")
	viper.SetDefault("NEWSBREAK_RATE_LIMIT_CAPACITY", 10)     // rajada máxima
	viper.SetDefault("NEWSBREAK_RATE_LIMIT_PER_SECOND", 10.0) // reposição contínua
	viper.SetDefault("NEWSBREAK_RETRY_MAX_ATTEMPTS", 3)       // tentativas no total
	viper.SetDefault("NEWSBREAK_RETRY_BACKOFF_BASE", "300ms") // base * 2^n

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("HTTP_RATE_LIMIT", 5.0)
	viper.SetDefault("HTTP_RATE_BURST", 20)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.NewsBreak.AccessToken = strings.TrimSpace(config.NewsBreak.AccessToken)
	config.Server.Transport = strings.ToLower(strings.TrimSpace(config.Server.Transport))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os valores que não podem ser corrigidos por padrão.
// A ausência do token é tratada por quem constrói o cliente.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("%w: transporte %q (use %s ou %s)", ErrInvalidConfig, c.Server.Transport, TransportStdio, TransportHTTP)
	}

	if c.NewsBreak.RateLimitCapacity <= 0 {
		return fmt.Errorf("%w: NEWSBREAK_RATE_LIMIT_CAPACITY deve ser positivo", ErrInvalidConfig)
	}
	if c.NewsBreak.RateLimitPerSecond <= 0 {
		return fmt.Errorf("%w: NEWSBREAK_RATE_LIMIT_PER_SECOND deve ser positivo", ErrInvalidConfig)
	}
	if c.NewsBreak.RetryMaxAttempts <= 0 {
		return fmt.Errorf("%w: NEWSBREAK_RETRY_MAX_ATTEMPTS deve ser positivo", ErrInvalidConfig)
	}
	if c.NewsBreak.Timeout <= 0 {
		return fmt.Errorf("%w: NEWSBREAK_TIMEOUT deve ser positivo", ErrInvalidConfig)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
