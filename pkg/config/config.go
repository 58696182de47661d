package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// resumes backend; settings apiBaseUrl/apiToken override these at runtime
	BackendURL   string `yaml:"backend_url"`
	BackendToken string `yaml:"backend_token"`

	SettingsDriver string `yaml:"settings_driver"`
	SQLitePath     string `yaml:"sqlite_path"`
	RedisAddr      string `yaml:"redis_addr"`
	DatabaseURL    string `yaml:"database_url"`

	RabbitMQURL     string `yaml:"rabbitmq_url"`
	IncludesBaseURL string `yaml:"includes_base_url"`

	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	JWTTTLMinutes int    `yaml:"jwt_ttl_minutes"`

	OpenRouterAPIKey string `yaml:"openrouter_api_key"`
	OpenRouterBase   string `yaml:"openrouter_base_url"`
	OpenRouterModel  string `yaml:"openrouter_model"`

	UploadMaxBytes int64 `yaml:"upload_max_bytes"`
	UploadWorkers  int   `yaml:"upload_workers"`
	DemoDelayMinMS int   `yaml:"demo_delay_min_ms"`
	DemoDelayMaxMS int   `yaml:"demo_delay_max_ms"`
}

func defaults() Config {
	return Config{
		Port:           "8080",
		LogLevel:       "info",
		LogFormat:      "text",
		SettingsDriver: "sqlite",
		SQLitePath:     "resumeboard.db",
		JWTIssuer:      "resumeboard",
		JWTTTLMinutes:  60,
		UploadMaxBytes: 10 << 20,
		UploadWorkers:  2,
		DemoDelayMinMS: 800,
		DemoDelayMaxMS: 3400,
	}
}

// Load reads environment variables, optionally from a .env file if present.
// When CONFIG_FILE names a YAML file it is applied first; the environment wins.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.BackendURL = getEnv("BACKEND_URL", cfg.BackendURL)
	cfg.BackendToken = getEnv("BACKEND_TOKEN", cfg.BackendToken)
	cfg.SettingsDriver = getEnv("SETTINGS_DRIVER", cfg.SettingsDriver)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RabbitMQURL = getEnv("RABBITMQ_URL", cfg.RabbitMQURL)
	cfg.IncludesBaseURL = getEnv("INCLUDES_BASE_URL", cfg.IncludesBaseURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.JWTTTLMinutes = getEnvInt("JWT_TTL_MINUTES", cfg.JWTTTLMinutes)
	cfg.OpenRouterAPIKey = getEnv("OPENROUTER_API_KEY", cfg.OpenRouterAPIKey)
	cfg.OpenRouterBase = getEnv("OPENROUTER_BASE_URL", cfg.OpenRouterBase)
	cfg.OpenRouterModel = getEnv("OPENROUTER_MODEL", cfg.OpenRouterModel)
	cfg.UploadMaxBytes = int64(getEnvInt("UPLOAD_MAX_BYTES", int(cfg.UploadMaxBytes)))
	cfg.UploadWorkers = getEnvInt("UPLOAD_WORKERS", cfg.UploadWorkers)
	cfg.DemoDelayMinMS = getEnvInt("DEMO_DELAY_MIN_MS", cfg.DemoDelayMinMS)
	cfg.DemoDelayMaxMS = getEnvInt("DEMO_DELAY_MAX_MS", cfg.DemoDelayMaxMS)

	switch cfg.SettingsDriver {
	case "sqlite", "redis", "postgres", "memory":
	default:
		return cfg, fmt.Errorf("unknown SETTINGS_DRIVER %q", cfg.SettingsDriver)
	}
	return cfg, nil
}

func (c Config) DemoDelay() (minDelay, maxDelay time.Duration) {
	return time.Duration(c.DemoDelayMinMS) * time.Millisecond, time.Duration(c.DemoDelayMaxMS) * time.Millisecond
}

func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
