package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"tokensmith.app/forge/core/db"
)

type Config struct {
	OTel           OTelConfig
	GenerationLLM  LLMConfig
	Redis          RedisConfig
	GoldenExamples GoldenExamplesConfig
	Export         ExportConfig
	Env            string
	Port           string
	AdminAPIKey    string
	// AllowedOrigins restricts CORS; empty allows any origin.
	AllowedOrigins []string
	DB             db.Config
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
	Environment    string
	SampleRatio    float64
}

type LLMConfig struct {
	Provider    string // "openai", "anthropic" or "gemini"
	APIKey      string
	BaseURL     string // Optional: for custom endpoints
	Model       string
	MaxTokens   int
	Temperature float64
}

type RedisConfig struct {
	URL       string
	KeyPrefix string
	TTL       time.Duration
}

type GoldenExamplesConfig struct {
	CacheSize   int
	CacheTTL    time.Duration
	FetchLimit  int
	PromptLimit int
}

type ExportConfig struct {
	MaxRequestBytes  int64
	DefaultColorMode string
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
	ServiceTypeCLI    ServiceType = "cli"
)

// Load loads configuration from environment variables.
// In development, it loads from service-specific .env files:
//   - .env.server for the HTTP API
//   - .env.cli for the tokensmith command
//
// Falls back to .env if service-specific file doesn't exist.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("TOKENSMITH_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:            getEnv("TOKENSMITH_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AdminAPIKey:    getEnv("ADMIN_API_KEY", ""),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		DB: db.Config{
			DSN:      getEnv("DATABASE_URL", ""),
			MaxConns: getEnvInt32("DB_MAX_CONNS", 10),
			MinConns: getEnvInt32("DB_MIN_CONNS", 2),
		},
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "tokensmith"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			SampleRatio:    getEnvFloat("OTEL_TRACES_SAMPLE_RATIO", 1),
		},
		GenerationLLM: LLMConfig{
			Provider:    getEnv("GENERATION_LLM_PROVIDER", "openai"),
			APIKey:      getEnv("GENERATION_LLM_API_KEY", ""),
			BaseURL:     getEnv("GENERATION_LLM_BASE_URL", ""),
			Model:       getEnv("GENERATION_LLM_MODEL", "gpt-4o"),
			MaxTokens:   getEnvInt("GENERATION_LLM_MAX_TOKENS", 16384),
			Temperature: getEnvFloat("GENERATION_LLM_TEMPERATURE", 0.7),
		},
		Redis: RedisConfig{
			URL:       getEnv("REDIS_URL", ""),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "tokensmith:brand:"),
			TTL:       getEnvDuration("GENERATION_CACHE_TTL", 24*time.Hour),
		},
		GoldenExamples: GoldenExamplesConfig{
			CacheSize:   getEnvInt("GOLDEN_EXAMPLES_CACHE_SIZE", 256),
			CacheTTL:    getEnvDuration("GOLDEN_EXAMPLES_CACHE_TTL", 5*time.Minute),
			FetchLimit:  getEnvInt("GOLDEN_EXAMPLES_FETCH_LIMIT", 5),
			PromptLimit: getEnvInt("GOLDEN_EXAMPLES_PROMPT_LIMIT", 2),
		},
		Export: ExportConfig{
			MaxRequestBytes:  int64(getEnvInt("EXPORT_MAX_REQUEST_BYTES", 2<<20)),
			DefaultColorMode: getEnv("EXPORT_DEFAULT_COLOR_MODE", "light"),
		},
	}
	cfg.OTel.Environment = cfg.Env

	if cfg.GenerationLLM.APIKey != "" && !cfg.GenerationLLM.Enabled() {
		return Config{}, fmt.Errorf("GENERATION_LLM_PROVIDER %q is not supported", cfg.GenerationLLM.Provider)
	}

	if cfg.IsProduction() && cfg.AdminAPIKey == "" && cfg.DB.Enabled() {
		return Config{}, fmt.Errorf("ADMIN_API_KEY is required in production when DATABASE_URL is set")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c LLMConfig) Enabled() bool {
	return c.APIKey != "" && (c.Provider == "openai" || c.Provider == "anthropic" || c.Provider == "gemini")
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt32(key string, fallback int32) int32 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
