package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Keys  APIKeys
	Relay RelayConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	EventLogFilePath   string
	CorsAllowedOrigins string
}

type APIKeys struct {
	OpenRouter string
}

type RelayConfig struct {
	BaseURL         string
	Referer         string
	Title           string
	RequestTimeout  time.Duration
	StepPause       time.Duration
	SessionTTLHours int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			EventLogFilePath:   getEnv("EVENT_LOG_FILE_PATH", "events.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "https://thepromptlink.netlify.app, http://localhost:3000"),
		},
		Keys: APIKeys{
			OpenRouter: getEnv("OPENROUTER_API_KEY", ""),
		},
		Relay: RelayConfig{
			BaseURL:         getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Referer:         getEnv("OPENROUTER_REFERER", "https://unitylab.ai"),
			Title:           getEnv("OPENROUTER_TITLE", "PromptLink AI Orchestration"),
			RequestTimeout:  time.Duration(getEnvAsInt("RELAY_REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
			StepPause:       time.Duration(getEnvAsInt("RELAY_STEP_PAUSE_SECONDS", 1)) * time.Second,
			SessionTTLHours: getEnvAsInt("RELAY_SESSION_TTL_HOURS", 24),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
