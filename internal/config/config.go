package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/franciscosanchezn/gin-meal-max/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Random source names accepted in RANDOM_SOURCE
const (
	RandomSourceRandomOrg = "randomorg"
	RandomSourceLocal     = "local"
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `env:"APP_ENV" envDefault:"development"`
	Port        int    `env:"APP_PORT" envDefault:"8080"`
	Host        string `env:"APP_HOST" envDefault:"localhost"`

	// Database configuration
	DBDriver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"meal_max"`
	DBUser     string `env:"DB_USER" envDefault:"user"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"password"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	DBPath     string `env:"DB_PATH" envDefault:"meal_max.sqlite"`
	SeedDB     bool   `env:"SEED_DATABASE" envDefault:"false"`

	// Logging configuration, empty keeps the APP_ENV level
	LogLevel string `env:"LOG_LEVEL"`

	// Random source configuration
	RandomSource  string        `env:"RANDOM_SOURCE" envDefault:"randomorg"`
	RandomURL     string        `env:"RANDOM_URL"`
	RandomTimeout time.Duration `env:"RANDOM_TIMEOUT" envDefault:"5s"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, LogLevel: %s, RandomSource: %s, RandomTimeout: %s}",
		c.Environment, c.Port, c.Host, c.DBDriver, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPath, c.LogLevel, c.RandomSource, c.RandomTimeout)
}

// Database returns the connection settings for the database package
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}

// Level returns the log level named in LOG_LEVEL, and false when it is unset
func (c *Config) Level() (logrus.Level, bool) {
	if c.LogLevel == "" {
		return 0, false
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, false
	}
	return level, true
}

// SetLogLevel changes the level of this package's logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates the database driver, random source and timeout
// Returns an error if any environment variable is malformed or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch config.DBDriver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", config.DBDriver)
	}

	switch config.RandomSource {
	case RandomSourceRandomOrg, RandomSourceLocal:
	default:
		return nil, fmt.Errorf("unsupported RANDOM_SOURCE %q (supported: %s, %s)",
			config.RandomSource, RandomSourceRandomOrg, RandomSourceLocal)
	}

	if config.LogLevel != "" {
		if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	if config.RandomTimeout <= 0 {
		return nil, fmt.Errorf("RANDOM_TIMEOUT must be positive, got %s", config.RandomTimeout)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
