package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AdminCredential struct {
	UserID   string
	Password string
}

type AppConfig struct {
	AppPort               string
	AppEnv                string
	AppURL                string
	AppCorsAllowedOrigins []string

	DataDir string

	StorageMode   string
	StorageUpload string

	S3Bucket       string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3Endpoint     string
	S3PublicDomain string

	JWTSecret string
	JWTExp    int

	AdminCredentials []AdminCredential

	UploadCleanupCron   string
	UploadRetentionDays float64
}

func LoadAppConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, reading from system environment variables")
	}

	return &AppConfig{
		AppPort:               getEnv("APP_PORT", "5000"),
		AppEnv:                getEnv("APP_ENV", "development"),
		AppURL:                getEnv("APP_URL", "http://localhost:5000"),
		AppCorsAllowedOrigins: strings.Split(getEnv("APP_CORS_ALLOWED_ORIGINS", "*"), ","),

		DataDir: getEnv("DATA_DIR", "data"),

		StorageMode:   getEnv("STORAGE_MODE", "local"),
		StorageUpload: getEnv("STORAGE_UPLOAD", "static/uploads"),

		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3PublicDomain: getEnv("S3_PUBLIC_DOMAIN", ""),

		JWTSecret: mustGetEnv("JWT_SECRET"),
		JWTExp:    getEnvAsInt("JWT_EXP", 24),

		AdminCredentials: parseAdminCredentials(getEnv("ADMIN_CREDENTIALS", "admin:admin123,admin1:password123")),

		UploadCleanupCron:   getEnv("UPLOAD_CLEANUP_CRON", "0 3 * * *"),
		UploadRetentionDays: getEnvAsFloat("UPLOAD_RETENTION_DAYS", 7.0),
	}
}

// parseAdminCredentials reads a "user:password,user:password" list. Entries
// without a colon are skipped with a warning.
func parseAdminCredentials(raw string) []AdminCredential {
	var creds []AdminCredential
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		userID, password, ok := strings.Cut(entry, ":")
		if !ok {
			slog.Warn("Skipping malformed admin credential entry", "entry", entry)
			continue
		}
		creds = append(creds, AdminCredential{UserID: userID, Password: password})
	}
	return creds
}

func mustGetEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		slog.Error("Environment variable is required but not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		slog.Warn("Environment variable must be an integer, using fallback", "key", key, "value", valStr, "fallback", fallback)
		return fallback
	}
	return val
}

func getEnvAsFloat(key string, fallback float64) float64 {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		slog.Warn("Environment variable must be a float, using fallback", "key", key, "value", valStr, "fallback", fallback)
		return fallback
	}
	return val
}
