package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the database configuration for the persistence layer
type Config struct {
	DBType            string // mysql, mariadb, postgres, sqlite, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string // for sqlite this is the file path
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required for %s", cfg.DBType)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
