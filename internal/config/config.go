package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	JWTSecret     string
	JWTTTLMinutes int

	RedisURL string

	MeiliSearchHost string
	MeiliMasterKey  string

	GeminiModel string

	PlacesBaseURL string
	PlacesAPIKey  string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	LogFilePath string
	LogLevel    string

	RateLimitAISummary time.Duration

	SuggestionSchedule string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60*24),

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		PlacesBaseURL: os.Getenv("PLACES_BASE_URL"),
		PlacesAPIKey:  os.Getenv("PLACES_API_KEY"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		LogFilePath: os.Getenv("LOG_FILE_PATH"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		RateLimitAISummary: time.Duration(getEnvInt("RATE_LIMIT_AI_SUMMARY_SECONDS", 60)) * time.Second,

		SuggestionSchedule: getEnv("SUGGESTION_SCHEDULE", "0 10 * * *"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
