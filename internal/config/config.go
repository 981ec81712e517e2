package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Store   StoreConfig
	Server  ServerConfig
	Weather WeatherConfig
}

// StoreType represents the entity store backend
type StoreType string

const (
	StoreTypeMongo  StoreType = "mongo"
	StoreTypeMemory StoreType = "memory"
)

// StoreConfig holds entity store configuration
type StoreConfig struct {
	Type StoreType

	// Mongo backend.
	URI        string
	Database   string
	Collection string

	// Embedded backend: optional database name for the in-memory SQLite file.
	MemoryName string
}

// DSN returns the connection string for the embedded backend
func (c StoreConfig) DSN() string {
	if c.MemoryName != "" {
		return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.MemoryName)
	}
	return "file::memory:?cache=shared"
}

// IsMemory returns true if using the embedded in-memory store
func (c StoreConfig) IsMemory() bool {
	return c.Type == StoreTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port      string
	StaticDir string
}

// WeatherConfig holds upstream weather provider configuration
type WeatherConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	storeType := StoreType(getEnv("STORE_TYPE", "mongo"))
	if storeType != StoreTypeMongo && storeType != StoreTypeMemory {
		storeType = StoreTypeMongo
	}

	timeout := time.Duration(getEnvAsInt("WEATHER_TIMEOUT_SECONDS", 30)) * time.Second

	config := &Config{
		Store: StoreConfig{
			Type:       storeType,
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DATABASE", "weather"),
			Collection: getEnv("MONGO_COLLECTION", "weather_entities"),
			MemoryName: os.Getenv("MEMORY_STORE_NAME"),
		},
		Server: ServerConfig{
			Port:      getEnv("APP_PORT", "8080"),
			StaticDir: getEnv("STATIC_DIR", "web"),
		},
		Weather: WeatherConfig{
			BaseURL: getEnv("WEATHER_BASE_URL", ""),
			APIKey:  os.Getenv("WEATHER_API_KEY"),
			Timeout: timeout,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
