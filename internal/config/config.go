package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Gemini  GeminiConfig
	Alerts  AlertsConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CatalogConfig controls the seeded data sources. FetchDelay simulates the
// latency of a remote catalog; zero disables it.
type CatalogConfig struct {
	FetchDelay time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// AlertsConfig enables the async notification queue when RedisAddr is set.
type AlertsConfig struct {
	RedisAddr   string
	Concurrency int
	MailAPIURL  string
	MailAPIKey  string
	MailFrom    string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Catalog: CatalogConfig{
			FetchDelay: getEnvDuration("CATALOG_FETCH_DELAY", 0),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-001"),
		},
		Alerts: AlertsConfig{
			RedisAddr:   os.Getenv("REDIS_ADDR"),
			Concurrency: getEnvInt("ALERTS_CONCURRENCY", 5),
			MailAPIURL:  getEnv("MAIL_API_URL", "https://api.useplunk.com/v1/send"),
			MailAPIKey:  os.Getenv("MAIL_API_KEY"),
			MailFrom:    os.Getenv("MAIL_FROM"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
