package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	AutoMigrate bool
	SwaggerHost string

	BookingsTable string

	ProductImageBaseURL string
	ProductCacheTTL     time.Duration

	RedisAddr string
	RedisDB   int
	RedisPass string

	SeedPhone    string
	SeedPassword string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		MySQLDSN:            getEnv("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/superdaily2?charset=utf8mb4&parseTime=False&loc=Local"),
		AutoMigrate:         getEnvBool("AUTO_MIGRATE", false),
		SwaggerHost:         os.Getenv("SWAGGER_HOST"),
		BookingsTable:       getEnv("BOOKINGS_TABLE", "bookings"),
		ProductImageBaseURL: getEnv("PRODUCT_IMAGE_BASE_URL", "http://127.0.0.1/superdaily/storage/products/"),
		ProductCacheTTL:     getEnvDuration("PRODUCT_CACHE_TTL", 0),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		SeedPhone:           getEnv("SEED_PHONE", "0000000000"),
		SeedPassword:        getEnv("SEED_PASSWORD", "password123"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
