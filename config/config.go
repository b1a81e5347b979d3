package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the loaded configuration.
type Config struct {
	Port              string
	Env               string
	UserServiceURL    string
	ProductServiceURL string
	OrderServiceURL   string
	RequestTimeout    time.Duration
	WorkerPoolSize    int
	RedisURL          string
	OperationTTL      time.Duration
}

// Load reads configuration from the .env file and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		UserServiceURL:    getEnv("USER_SERVICE_URL", "http://localhost:8001"),
		ProductServiceURL: getEnv("PRODUCT_SERVICE_URL", "http://localhost:8002"),
		OrderServiceURL:   getEnv("ORDER_SERVICE_URL", "http://localhost:8003"),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 10*time.Second),
		WorkerPoolSize:    getInt("WORKER_POOL_SIZE", 10),
		RedisURL:          os.Getenv("REDIS_URL"),
		OperationTTL:      getDuration("OPERATION_TTL", 24*time.Hour),
	}
}

// getEnv returns an environment variable or the fallback.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Printf("invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
