package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	MongoURI         string
	DBName           string
	Environment      string
	CORSOrigin       string
	JWTSecret        string
	JWTRefreshSecret string
	JWTExpire        time.Duration
	JWTRefreshExpire time.Duration
	RateLimitWindow  time.Duration
	RateLimitMax     int
	AppId            string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:           getEnv("DB_NAME", "kisanmitra"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:5173"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "your-refresh-secret-key"),
		JWTExpire:        getDuration("JWT_EXPIRE", 24*time.Hour),
		JWTRefreshExpire: getDuration("JWT_REFRESH_EXPIRE", 7*24*time.Hour),
		RateLimitWindow:  getMillis("RATE_LIMIT_WINDOW_MS", 15*time.Minute),
		RateLimitMax:     getInt("RATE_LIMIT_MAX_REQUESTS", 100),
		AppId:            getEnv("APP_ID", "kisanmitra"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getMillis reads a duration expressed as milliseconds, the unit the
// deployment env files already use for the rate limiter window.
func getMillis(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}
