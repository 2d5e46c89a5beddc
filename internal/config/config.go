package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	TokenLifetime  time.Duration
	AllowedOrigins []string
	GinMode        string
	RoleSkillsFile string
}

func Load() *Config {
	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "skillboard"),
		DBPassword:     getEnv("DB_PASSWORD", "skillboard"),
		DBName:         getEnv("DB_NAME", "skillboard"),
		JWTSecret:      getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenLifetime:  time.Duration(getEnvInt("TOKEN_LIFETIME_MINUTES", 60)) * time.Minute,
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		GinMode:        getEnv("GIN_MODE", "debug"),
		RoleSkillsFile: getEnv("ROLE_SKILLS_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
