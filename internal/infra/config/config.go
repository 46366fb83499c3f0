package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env  string
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	OpenAIBaseURL  string
	OpenAIAPIKey   string
	EmbeddingModel string
	ChatModel      string

	SearchLimit        int
	MaxAnalysis        int
	EmbeddingCacheSize int

	// ThrottleMode selects the pacing strategy between generation calls:
	// "fixed", "token_bucket", or "none".
	ThrottleMode     string
	PacingSeconds    int
	RatePerMinute    int
	BackendTimeout   int
	GenerateTimeout  int
}

func Load() *Config {
	return &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "9020"),

		DBHost:     getEnv("DB_HOST", "hospital-db"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "hospital_user"),
		DBPassword: getSecret("DB_PASSWORD", "DB_PASSWORD_FILE", "hospital_password"),
		DBName:     getEnv("DB_NAME", "hospital_db"),

		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:   getSecret("OPENAI_API_KEY", "OPENAI_API_KEY_FILE", ""),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		ChatModel:      getEnv("CHAT_MODEL", "gpt-4o"),

		SearchLimit:        getEnvInt("RECOMMEND_SEARCH_LIMIT", 100),
		MaxAnalysis:        getEnvInt("RECOMMEND_MAX_ANALYSIS", 3),
		EmbeddingCacheSize: getEnvInt("EMBEDDING_CACHE_SIZE", 256),

		ThrottleMode:    getEnv("RECOMMEND_THROTTLE", "fixed"),
		PacingSeconds:   getEnvInt("RECOMMEND_PACING_SECONDS", 2),
		RatePerMinute:   getEnvInt("RECOMMEND_RATE_PER_MINUTE", 30),
		BackendTimeout:  getEnvInt("BACKEND_TIMEOUT_SECONDS", 60),
		GenerateTimeout: getEnvInt("GENERATE_TIMEOUT_SECONDS", 120),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getSecret(envKey, fileEnvKey, fallback string) string {
	if value, ok := os.LookupEnv(envKey); ok {
		return value
	}

	// Fall back to a mounted secret file when only the path is provided.
	if filePath, ok := os.LookupEnv(fileEnvKey); ok {
		content, err := os.ReadFile(filePath)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
