package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// PostgreSQL
	PostgresDSN string

	// MongoDB (snapshot archive, optional)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Redis (price summary cache, optional)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PriceCacheTTL time.Duration

	// Kafka (search events, optional)
	KafkaBrokers []string
	KafkaTopic   string

	// Live pricing API
	FlightAPIBaseURL string
	FlightAPIKey     string
	FlightAPITimeout time.Duration
	Market           string
	Currency         string
	Locale           string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 60)) * time.Second,

		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=flightsearch dbname=flightsearch sslmode=disable"),

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "flightsearch"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		PriceCacheTTL: time.Duration(getEnvAsInt("PRICE_CACHE_TTL", 300)) * time.Second,

		KafkaTopic: getEnv("KAFKA_TOPIC", "flightsearch.events"),

		FlightAPIBaseURL: getEnv("FLIGHT_API_BASE_URL", "https://partners.api.skyscanner.net/apiservices"),
		FlightAPIKey:     getEnv("FLIGHT_API_KEY", ""),
		FlightAPITimeout: time.Duration(getEnvAsInt("FLIGHT_API_TIMEOUT", 60)) * time.Second,
		Market:           getEnv("FLIGHT_API_MARKET", "ES"),
		Currency:         getEnv("FLIGHT_API_CURRENCY", "EUR"),
		Locale:           getEnv("FLIGHT_API_LOCALE", "en-GB"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		config.KafkaBrokers = strings.Split(brokers, ",")
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
