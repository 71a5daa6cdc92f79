package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Record     RecordConfig
	LocalStore LocalStoreConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// RecordConfig points the console at the remote record-keeping service.
type RecordConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type LocalStoreConfig struct {
	Path string
}

func Load() *Config {
	// Load .env if present (development); in production the environment is set directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	timeoutSec, _ := strconv.Atoi(getEnv("RECORD_SERVICE_TIMEOUT", "10"))

	return &Config{
		App: AppConfig{
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Record: RecordConfig{
			BaseURL: getEnv("RECORD_SERVICE_URL", "http://127.0.0.1:8000"),
			Token:   getEnv("RECORD_SERVICE_TOKEN", ""),
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		LocalStore: LocalStoreConfig{
			Path: getEnv("LOCALSTORE_PATH", "data/console.db"),
		},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
