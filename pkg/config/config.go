package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	FirestoreProject string
	JWTSecret        string
	JWTExpiry        int64
	OpenWeatherKey   string
	AgmarketKey      string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		JWTSecret:        getEnv("JWT_SECRET", "agrikul-dev-secret"),
		JWTExpiry:        getEnvAsInt64("JWT_EXPIRY", 30*24*60*60), // 30 days
		OpenWeatherKey:   getEnv("OPENWEATHER_API_KEY", ""),
		AgmarketKey:      getEnv("AGMARKET_API_KEY", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
