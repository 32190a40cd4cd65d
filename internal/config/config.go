package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Storage  StorageConfig  `json:"storage"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Dispatch DispatchConfig `json:"dispatch"`
	Webhook  WebhookConfig  `json:"webhook"`
	AMQP     AMQPConfig     `json:"amqp"`
	APIKey   string         `json:"api_key,omitempty"`
}

type HttpConfig struct {
	Port            string          `json:"port"`
	ReadTimeout     time.Duration   `json:"read_timeout"`
	WriteTimeout    time.Duration   `json:"write_timeout"`
	ShutdownTimeout time.Duration   `json:"shutdown_timeout"`
	PublicLimit     RateLimitConfig `json:"public_limit"`
	GovLimit        RateLimitConfig `json:"gov_limit"`
}

// RateLimitConfig is a per-IP token bucket.
type RateLimitConfig struct {
	RPS   int `json:"rps"`
	Burst int `json:"burst"`
}

// StorageConfig selects the backend for alert records and read state.
type StorageConfig struct {
	Backend string `json:"backend"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type DispatchConfig struct {
	RadiusKm        float64       `json:"radius_km"`
	Timeout         time.Duration `json:"timeout"`
	NearbyTimeout   time.Duration `json:"nearby_timeout"`
	RefreshInterval time.Duration `json:"refresh_interval"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
	Queue    string `json:"queue"`
}

type AMQPConfig struct {
	URL      string `json:"url,omitempty"`
	Exchange string `json:"exchange"`
}

func Load(ctx context.Context) (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("storage_backend", cfg.Storage.Backend),
		slog.Float64("radius_km", cfg.Dispatch.RadiusKm),
		slog.Bool("webhook_enabled", cfg.WebhookEnabled()),
		slog.Bool("amqp_enabled", cfg.AMQP.URL != ""),
	)

	return cfg, nil
}

// FromEnv reads the process environment and fills defaults. It does not
// validate.
func FromEnv() *Config {
	return &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			PublicLimit: RateLimitConfig{
				RPS:   getEnvInt("HTTP_PUBLIC_RPS", 10),
				Burst: getEnvInt("HTTP_PUBLIC_BURST", 20),
			},
			GovLimit: RateLimitConfig{
				RPS:   getEnvInt("HTTP_GOV_RPS", 5),
				Burst: getEnvInt("HTTP_GOV_BURST", 10),
			},
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", BackendMemory),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "geoalert"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Dispatch: DispatchConfig{
			RadiusKm:        getEnvFloat("DISPATCH_RADIUS_KM", 10),
			Timeout:         getEnvDuration("DISPATCH_TIMEOUT", 5*time.Second),
			NearbyTimeout:   getEnvDuration("DISPATCH_NEARBY_TIMEOUT", 500*time.Millisecond),
			RefreshInterval: getEnvDuration("DISPATCH_REFRESH_INTERVAL", 30*time.Second),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
			Queue:    getEnv("WEBHOOK_QUEUE", "notifications:outbox"),
		},
		AMQP: AMQPConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "geoalert.events"),
		},
		APIKey: getEnv("API_KEY", ""),
	}
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	for _, l := range []RateLimitConfig{c.Http.PublicLimit, c.Http.GovLimit} {
		if l.RPS <= 0 || l.Burst <= 0 {
			return errors.New("rate limits must be positive")
		}
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR required for redis backend")
		}
	case BackendPostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required for postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Dispatch.RadiusKm <= 0 || c.Dispatch.RadiusKm > 100 {
		return errors.New("DISPATCH_RADIUS_KM must be in (0, 100]")
	}
	if c.Dispatch.Timeout <= 0 || c.Dispatch.NearbyTimeout <= 0 {
		return errors.New("dispatch timeouts must be positive")
	}
	if c.Dispatch.RefreshInterval < time.Second {
		return errors.New("DISPATCH_REFRESH_INTERVAL must be at least 1s")
	}

	if c.APIKey == "" {
		return errors.New("API_KEY is empty")
	}

	return nil
}

// WebhookEnabled is true when notifications should be pushed to the gateway.
// The outbox lives in Redis, so the redis backend is required as well.
func (c *Config) WebhookEnabled() bool {
	return !c.Webhook.Disabled && c.Webhook.URL != "" && c.Storage.Backend == BackendRedis
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

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
