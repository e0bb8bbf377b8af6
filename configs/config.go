package config

import (
	"os"
)

type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

func Load() *Config {
	return &Config{
		Port:       getEnvOrDefault("PORT", "8080"),
		DBHost:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
		DBUser:     getEnvOrDefault("POSTGRES_USER", "postgres"),
		DBPassword: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
		DBName:     getEnvOrDefault("POSTGRES_DB", "orders"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
