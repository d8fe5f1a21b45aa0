package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Persistence backends of the mock store
const (
	PersistenceMemory   = "memory"
	PersistenceFile     = "file"
	PersistenceRedis    = "redis"
	PersistencePostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	API struct {
		BaseURL string `yaml:"base_url" env:"ALUMNI_API_BASE_URL"`
		// UseMock selects the mock data sources only when it is exactly "true".
		UseMock    string `yaml:"use_mock" env:"ALUMNI_USE_MOCK_API"`
		Token      string `yaml:"token" env:"ALUMNI_API_TOKEN"`
		Timeout    string `yaml:"timeout" env:"ALUMNI_API_TIMEOUT"`
		MaxRetries int    `yaml:"max_retries" env:"ALUMNI_API_MAX_RETRIES"`
		RetryDelay string `yaml:"retry_delay" env:"ALUMNI_API_RETRY_DELAY"`
	} `yaml:"api"`

	Mock struct {
		Latency     string `yaml:"latency" env:"MOCK_LATENCY"`
		SeedPath    string `yaml:"seed_path" env:"MOCK_SEED_PATH"`
		Persistence string `yaml:"persistence" env:"MOCK_PERSISTENCE"`
		DataDir     string `yaml:"data_dir" env:"MOCK_DATA_DIR"`
		SeedOnStart bool   `yaml:"seed_on_start" env:"MOCK_SEED_ON_START"`
	} `yaml:"mock"`

	Redis struct {
		Addr      string `yaml:"addr" env:"REDIS_ADDR"`
		Password  string `yaml:"password" env:"REDIS_PASSWORD"`
		DB        int    `yaml:"db" env:"REDIS_DB"`
		KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX"`
	} `yaml:"redis"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Auth struct {
		AdminTokenHash        string `yaml:"admin_token_hash" env:"ADMIN_TOKEN_HASH"`
		JWTSecret             string `yaml:"jwt_secret" env:"JWT_SECRET"`
		JWTIssuer             string `yaml:"jwt_issuer" env:"JWT_ISSUER"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
	} `yaml:"auth"`

	RateLimit struct {
		Enabled bool   `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
		Limit   int    `yaml:"limit" env:"RATE_LIMIT_LIMIT"`
		Period  string `yaml:"period" env:"RATE_LIMIT_PERIOD"`
	} `yaml:"rate_limit"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS"`
		MaxAge       string   `yaml:"max_age" env:"CORS_MAX_AGE"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// A missing .env file is normal outside development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = "10s"

	// API defaults
	config.API.BaseURL = "http://localhost:8080/api"
	config.API.UseMock = "true"
	config.API.Timeout = "10s"
	config.API.MaxRetries = 2
	config.API.RetryDelay = "200ms"

	// Mock defaults
	config.Mock.Latency = "300ms"
	config.Mock.Persistence = PersistenceMemory
	config.Mock.DataDir = "./data"
	config.Mock.SeedOnStart = true

	// Redis defaults
	config.Redis.Addr = "localhost:6379"
	config.Redis.KeyPrefix = "alumnihub:collections:"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "alumnihub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	// Auth defaults
	config.Auth.JWTIssuer = "alumnihub"
	config.Auth.AccessTokenExpiration = "12h"

	// Rate limit defaults
	config.RateLimit.Enabled = true
	config.RateLimit.Limit = 100
	config.RateLimit.Period = "1m"

	// CORS defaults
	config.CORS.AllowOrigins = []string{"*"}
	config.CORS.MaxAge = "12h"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	durations := map[string]string{
		"server shutdown timeout": config.Server.ShutdownTimeout,
		"API timeout":             config.API.Timeout,
		"API retry delay":         config.API.RetryDelay,
		"mock latency":            config.Mock.Latency,
		"rate limit period":       config.RateLimit.Period,
		"CORS max age":            config.CORS.MaxAge,
		"JWT access expiration":   config.Auth.AccessTokenExpiration,
	}
	for name, value := range durations {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	switch config.Mock.Persistence {
	case PersistenceMemory, PersistenceFile, PersistenceRedis, PersistencePostgres:
	default:
		return fmt.Errorf("unknown mock persistence %q", config.Mock.Persistence)
	}

	if !config.ShouldUseMockAPI() && config.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required when the mock API is disabled")
	}
	if config.API.MaxRetries < 0 {
		return fmt.Errorf("API max retries must not be negative")
	}
	if config.RateLimit.Enabled && config.RateLimit.Limit <= 0 {
		return fmt.Errorf("rate limit must be positive when enabled")
	}

	return nil
}

// ShouldUseMockAPI reports whether data sources are the in-process mocks.
// Only the exact string "true" enables them.
func (c *Config) ShouldUseMockAPI() bool {
	return c.API.UseMock == "true"
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
