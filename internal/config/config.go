package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the complete application configuration, loaded from the
// environment with development defaults.
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Storage StorageConfig
	Catalog CatalogConfig
	Metrics MetricsConfig
	Logging LoggingConfig
}

// AppConfig contains general application settings.
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	EnableCORS   bool
	CORSOrigins  []string

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// SessionConfig contains session cookie settings. The default secret is
// insecure and intended for development only; set SESSION_SECRET in any
// real deployment.
type SessionConfig struct {
	Secret     string
	CookieName string
}

// StorageConfig selects and configures the workflow persistence backend.
type StorageConfig struct {
	Backend      string // "file" or "database"
	WorkflowsDir string
	Driver       string // "sqlite" or "postgres", database backend only
	DSN          string
}

// CatalogConfig locates the tool catalog resource.
type CatalogConfig struct {
	Path string
}

// MetricsConfig contains prometheus settings.
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load builds the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "flowcanvas"),
			Environment: getEnv("APP_ENVIRONMENT", "development"),
			Debug:       getEnvBool("APP_DEBUG", true),
		},
		API: APIConfig{
			Host:              getEnv("API_HOST", "0.0.0.0"),
			Port:              getEnvInt("API_PORT", 5000),
			ReadTimeout:       getEnvDuration("API_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      getEnvDuration("API_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getEnvDuration("API_IDLE_TIMEOUT", 120*time.Second),
			EnableCORS:        getEnvBool("API_ENABLE_CORS", true),
			CORSOrigins:       getEnvList("API_CORS_ORIGINS", []string{"*"}),
			RateLimitRequests: getEnvInt("API_RATE_LIMIT_REQUESTS", 300),
			RateLimitWindow:   getEnvDuration("API_RATE_LIMIT_WINDOW", time.Minute),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "dev-secret-key-change-in-production"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "fc_session"),
		},
		Storage: StorageConfig{
			Backend:      getEnv("STORAGE_BACKEND", "file"),
			WorkflowsDir: getEnv("STORAGE_WORKFLOWS_DIR", "workflows"),
			Driver:       getEnv("STORAGE_DB_DRIVER", "sqlite"),
			DSN:          getEnv("STORAGE_DB_DSN", "flowcanvas.db"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", "configs/tools.json"),
		},
		Metrics: MetricsConfig{
			Enabled:   getEnvBool("METRICS_ENABLED", true),
			Namespace: getEnv("METRICS_NAMESPACE", "flowcanvas"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants that would otherwise surface as
// confusing runtime failures.
func (c *Config) Validate() error {
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("invalid API port: %d", c.API.Port)
	}

	switch c.Storage.Backend {
	case "file", "database":
	default:
		return fmt.Errorf("invalid storage backend: %q", c.Storage.Backend)
	}

	if c.Storage.Backend == "database" {
		switch c.Storage.Driver {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("invalid database driver: %q", c.Storage.Driver)
		}
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("session secret must not be empty")
	}

	return nil
}

// Addr returns the host:port the API server binds to.
func (c *APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return fallback
}
