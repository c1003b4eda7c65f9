package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	FrontendURL string

	JWTSecret      string
	JWTExpireHours int

	FirebaseServiceAccountPath string

	// Air-quality telemetry feed (OpenAQ-compatible, unauthenticated).
	FeedBaseURL string
	FeedRegion  string
	FeedLimit   int

	// Optional JSON position lookup used when a submission asks the server
	// to fill in missing coordinates. Empty disables server-side lookup.
	LocationLookupURL string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),

		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "serviceAccountKey.json"),

		FeedBaseURL: getEnv("FEED_BASE_URL", "https://api.openaq.org/v2/latest"),
		FeedRegion:  getEnv("FEED_REGION", "Nairobi"),
		FeedLimit:   getEnvInt("FEED_LIMIT", 25),

		LocationLookupURL: getEnv("LOCATION_LOOKUP_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
