package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type JWTConfig struct {
	AccessSecret     string
	AccessExpiresIn  string // duration string, e.g. "15m"
	RefreshSecret    string
	RefreshExpiresIn string // e.g. "168h"
}

type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// Endpoint overrides the AWS endpoint for S3-compatible providers
	// (Wasabi, MinIO). Empty means plain AWS S3.
	Endpoint string
	// PublicBaseURL is the URL prefix uploaded objects are served from.
	PublicBaseURL string
}

type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
	// ContactTo receives contact-form notifications
	ContactTo string
}

type Config struct {
	Env         string // "development" or "production"
	Port        string
	DBUrl       string
	FrontendURL string

	JWT  JWTConfig
	S3   S3Config
	SMTP SMTPConfig

	BcryptCost int

	// Local uploads directory (blog images); served under /uploads
	UploadDir string

	// Redis (rate limiting + failed-login tracking)
	RedisURL      string
	RedisPassword string

	// Rate Limiting
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int

	// Failed login lockout
	FailedLoginBlockMinutes int
	FailedLoginMaxAttempts  int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		JWT: JWTConfig{
			AccessSecret:     getEnv("JWT_ACCESS_TOKEN_SECRET", ""),
			AccessExpiresIn:  getEnv("JWT_ACCESS_TOKEN_EXPIRES_IN", "15m"),
			RefreshSecret:    getEnv("JWT_REFRESH_TOKEN_SECRET", ""),
			RefreshExpiresIn: getEnv("JWT_REFRESH_TOKEN_EXPIRES_IN", "168h"),
		},

		S3: S3Config{
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Region:          getEnv("S3_REGION", "ap-southeast-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			PublicBaseURL:   strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),
		},

		SMTP: SMTPConfig{
			Host:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
			Port:      getEnv("SMTP_PORT", "587"),
			Username:  getEnv("SMTP_USERNAME", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			FromEmail: getEnv("SMTP_FROM_EMAIL", ""),
			ContactTo: getEnv("CONTACT_EMAIL_TO", ""),
		},

		BcryptCost: getEnvInt("BCRYPT_COST", 12),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),

		FailedLoginBlockMinutes: getEnvInt("FAILED_LOGIN_BLOCK_MINUTES", 15),
		FailedLoginMaxAttempts:  getEnvInt("FAILED_LOGIN_MAX_ATTEMPTS", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		log.Println("WARNING: JWT secrets are missing. Token issuance will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
