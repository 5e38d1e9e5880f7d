package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Aasthik17/ExpenseEase/internal/database"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GinMode       string
	Database      database.Config
	RunMigrations bool
	Redis         RedisConfig
}

// RedisConfig is optional; an empty Addr disables event publishing.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// Load reads an optional .env file, then the process environment.
// Explicit environment variables win over .env entries.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	return Config{
		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "release"),
		Database: database.Config{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     os.Getenv("DB_PASSWORD"),
			Name:         getEnv("DB_NAME", "expenseease"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getInt("DB_MAX_CONNS", database.DefaultMaxOpenConns),
		},
		RunMigrations: getBool("RUN_MIGRATIONS", false),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using %v", key, value, fallback)
		return fallback
	}
	return b
}
