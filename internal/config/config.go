package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backend names.
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// Upload provider names.
const (
	UploadProviderImgBB = "imgbb"
	UploadProviderS3    = "s3"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Logger   LoggerConfig
	Admin    AdminConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects and configures the persistent state backend.
type StoreConfig struct {
	Backend string // "file" or "postgres"
	DataDir string // directory for the file backend
}

// DatabaseConfig holds database-related configuration for the postgres
// store backend.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// UploadConfig selects and configures the image hosting provider.
type UploadConfig struct {
	Provider string // "imgbb" or "s3"
	Endpoint string // imgbb endpoint override, mainly for tests
	APIKey   string // imgbb API key
	Timeout  time.Duration
	S3Bucket string
	S3Region string
	S3Prefix string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AdminConfig holds the optional API key guarding catalog mutations.
type AdminConfig struct {
	APIKey string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 5000),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", StoreBackendFile),
			DataDir: getEnv("STORE_DATA_DIR", "data"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "foodkiosk"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Upload: UploadConfig{
			Provider: getEnv("UPLOAD_PROVIDER", UploadProviderImgBB),
			Endpoint: getEnv("IMGBB_ENDPOINT", ""),
			APIKey:   getEnv("IMGBB_API_KEY", ""),
			Timeout:  time.Duration(getEnvAsInt("UPLOAD_TIMEOUT_SECONDS", 30)) * time.Second,
			S3Bucket: getEnv("UPLOAD_S3_BUCKET", ""),
			S3Region: getEnv("UPLOAD_S3_REGION", "us-east-1"),
			S3Prefix: getEnv("UPLOAD_S3_PREFIX", "images/"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Admin: AdminConfig{
			APIKey: getEnv("ADMIN_API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Store.Backend != StoreBackendFile && c.Store.Backend != StoreBackendPostgres {
		return fmt.Errorf("invalid store backend: %s (must be file or postgres)", c.Store.Backend)
	}

	if c.Store.Backend == StoreBackendFile && c.Store.DataDir == "" {
		return fmt.Errorf("data directory is required for the file store backend")
	}

	if c.Store.Backend == StoreBackendPostgres {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	}

	switch c.Upload.Provider {
	case UploadProviderImgBB:
		if c.Upload.APIKey == "" {
			return fmt.Errorf("imgbb API key is required")
		}
	case UploadProviderS3:
		if c.Upload.S3Bucket == "" {
			return fmt.Errorf("S3 bucket is required when the S3 uploader is selected")
		}
		if c.Upload.S3Region == "" {
			return fmt.Errorf("S3 region is required when the S3 uploader is selected")
		}
	default:
		return fmt.Errorf("invalid upload provider: %s (must be imgbb or s3)", c.Upload.Provider)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
