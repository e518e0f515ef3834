package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken      string
	DefaultLocale string
	LogLevel      string
	History       HistoryConfig
	Database      DatabaseConfig
}

// HistoryConfig holds lookup history settings
type HistoryConfig struct {
	RetentionDays int
	PageSize      int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	retentionDays, err := getEnvInt("HISTORY_RETENTION_DAYS", 60)
	if err != nil {
		return nil, err
	}
	pageSize, err := getEnvInt("HISTORY_PAGE_SIZE", 7)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		History: HistoryConfig{
			RetentionDays: retentionDays,
			PageSize:      pageSize,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "datelabel"),
			User:     getEnv("DB_USER", "datelabel"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.History.RetentionDays < 1 {
		return nil, fmt.Errorf("HISTORY_RETENTION_DAYS must be positive, got %d", cfg.History.RetentionDays)
	}
	if cfg.History.PageSize < 1 {
		return nil, fmt.Errorf("HISTORY_PAGE_SIZE must be positive, got %d", cfg.History.PageSize)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
