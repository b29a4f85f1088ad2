package config

import (
	"os"
	"strings"
)

// Config holds the application configuration
type Config struct {
	Port            string
	Environment     string
	APIKey          string
	DefaultLocation string
	DefaultWeather  string
	CommunityTrends []string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		APIKey:          getEnv("API_KEY", "default_secret_key"),
		DefaultLocation: getEnv("DEFAULT_LOCATION", "Bentonville, AR"),
		DefaultWeather:  getEnv("DEFAULT_WEATHER", "Sunny"),
		CommunityTrends: getEnvList("COMMUNITY_TRENDS", []string{"Plant-based snacks", "Local honey", "Sustainable packaging"}),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList カンマ区切りの環境変数をリストとして取得
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
