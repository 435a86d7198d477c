package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Operator credentials for the admin console. ADMIN_EMAIL and
	// ADMIN_SENHA are required; ADMIN_TOTP_SECRET enables the optional
	// second factor when set.
	AdminEmail      string
	AdminSenha      string
	AdminTOTPSecret string

	TokenSecret string        // Required: HMAC secret for admin bearer tokens
	TokenIssuer string        // Optional: issuer claim (default: fotosdotap-studio)
	TokenTTL    time.Duration // Optional: admin token lifetime (default: 12h)

	StorageDriver string // Storage backend (fs, sqlite, redis, memory) (default: fs)
	StorageDir    string // fs driver: root directory (default: ./data)
	SQLiteFile    string // sqlite driver: database file (default: ./studio.db)
	RedisAddr     string // redis driver: host:port
	RedisPassword string // redis driver: optional password

	AllowedOrigins []string // CORS origins (default: *)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	ReconcileInterval   time.Duration // Directory reconciliation interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminSenha:      os.Getenv("ADMIN_SENHA"),
		AdminTOTPSecret: os.Getenv("ADMIN_TOTP_SECRET"), // Optional second factor

		TokenSecret: os.Getenv("TOKEN_SECRET"),
		TokenIssuer: getEnvOrDefault("TOKEN_ISSUER", "fotosdotap-studio"),
		TokenTTL:    getEnvDurationOrDefault("TOKEN_TTL", 12*time.Hour),

		StorageDriver: getEnvOrDefault("STORAGE_DRIVER", "fs"),
		StorageDir:    getEnvOrDefault("STORAGE_DIR", "data"),
		SQLiteFile:    getEnvOrDefault("SQLITE_FILE", "studio.db"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		ReconcileInterval:   getEnvDurationOrDefault("RECONCILE_INTERVAL", 1*time.Hour),
	}

	cfg.AllowedOrigins = splitOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "*"))

	return cfg
}

// Validate reports the configuration errors that make the service unable to
// run at all.
func (cfg Config) Validate() error {
	if cfg.AdminEmail == "" || cfg.AdminSenha == "" {
		return errMissingOperator
	}
	if cfg.TokenSecret == "" {
		return errMissingTokenSecret
	}
	switch cfg.StorageDriver {
	case "fs", "sqlite", "redis", "memory":
	default:
		return errUnknownDriver
	}
	return nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
