package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string
	Mode            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type DatabaseConfig struct {
	Driver  string
	URL     string
	Name    string
	Path    string
	TestURL string
}

type LogConfig struct {
	Level string
}

// Load loads configuration from .env file and environment variables
func Load() (*Config, error) {
	// A missing .env file is fine, the environment is used as is
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Mode:            getEnv("GIN_MODE", "release"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Driver:  getEnv("DB_DRIVER", DriverMongo),
			URL:     getEnv("DATABASE_URL", "mongodb://localhost:27017"),
			Name:    getEnv("DATABASE_NAME", "blog"),
			Path:    getEnv("DB_PATH", "./blog.db"),
			TestURL: getEnv("TEST_DATABASE_URL", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverMongo, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q, expected %q or %q", c.Database.Driver, DriverMongo, DriverSQLite)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
