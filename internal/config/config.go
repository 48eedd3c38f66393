package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Project
	ProjectName string
	APIPrefix   string

	// Database
	DatabaseURL string

	// Security
	SecretKey         string
	Algorithm         string
	AccessTokenExpiry time.Duration

	// CORS
	CORSOrigins string

	// Server
	Port string

	// Uploads
	UploadDir     string
	MaxUploadSize int64
}

func Load() *Config {
	return &Config{
		ProjectName: getEnv("PROJECT_NAME", "HomeFinder"),
		APIPrefix:   getEnv("API_V1_STR", "/api/v1"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		SecretKey:         getEnv("SECRET_KEY", ""),
		Algorithm:         getEnv("ALGORITHM", "HS256"),
		AccessTokenExpiry: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,

		CORSOrigins: getEnv("BACKEND_CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),

		Port: getEnv("PORT", "8080"),

		UploadDir:     getEnv("UPLOAD_DIR", "uploads/listings"),
		MaxUploadSize: int64(getEnvInt("MAX_UPLOAD_SIZE", 5*1024*1024)),
	}
}

// Validate checks required settings. Missing values fail process startup,
// never an individual request.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY environment variable is required")
	}
	if c.Algorithm != "HS256" {
		return fmt.Errorf("unsupported signing algorithm %q (only HS256 is supported)", c.Algorithm)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
