package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/syncx"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/joho/godotenv"
)

const (
	SyncModeStub = "stub"
	SyncModeS3   = "s3"

	defaultAdminUser     = "admin"
	defaultAdminPassword = "admin123"
)

type Config struct {
	Port                 int           // HTTP server port (default: 8080)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	DatabaseFile         string        // Path to SQLite database file (default: ./rollcall.db)
	PepperFile           string        // Path to file containing pepper for password hashing (default: ./pepper)
	TokenSecret          string        // HMAC key for QR tokens, at least 32 bytes
	TokenSecretFile      string        // Optional: file holding the HMAC key, created when missing
	TokenWindow          time.Duration // QR token validity window (default: 5m)
	TokenGraceWindows    int           // Extra past windows accepted at validation (default: 0)
	OTPSecret            string        // Optional: key for login codes (default: the token secret)
	BearerTTL            time.Duration // Bearer credential lifetime, 0 means until logout (default: 0)
	AdminUser            string        // Administrator seeded when none exists
	AdminPassword        string        // Required in prod
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	QRSize               int           // Edge length of rendered QR images in pixels (default: 256)
	SyncMode             string        // stub or s3 (default: stub)
	S3                   syncx.S3Config
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:                 getEnvIntOrDefault("PORT", 8080),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "rollcall.db"),
		PepperFile:           getEnvOrDefault("PEPPER_FILE", "pepper"),
		TokenSecret:          os.Getenv("TOKEN_SECRET"),
		TokenSecretFile:      os.Getenv("TOKEN_SECRET_FILE"),
		TokenWindow:          getEnvMinutesOrDefault("TOKEN_WINDOW", qrtoken.DefaultWindow),
		TokenGraceWindows:    getEnvIntOrDefault("TOKEN_GRACE_WINDOWS", 0),
		OTPSecret:            os.Getenv("OTP_SECRET"),
		BearerTTL:            getEnvDurationOrDefault("BEARER_TTL", 0),
		AdminUser:            getEnvOrDefault("ADMIN_USER", defaultAdminUser),
		AdminPassword:        os.Getenv("ADMIN_PASSWORD"),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		QRSize:               getEnvIntOrDefault("QR_SIZE", qrtoken.DefaultImageSize),
		SyncMode:             strings.ToLower(getEnvOrDefault("SYNC_MODE", SyncModeStub)),
		S3: syncx.S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    getEnvOrDefault("S3_REGION", "us-east-1"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
	}
}

// IsProd reports whether the production posture applies.
func (c Config) IsProd() bool {
	return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.TokenWindow < time.Second || c.TokenWindow%time.Second != 0 {
		errs = append(errs, fmt.Errorf("TOKEN_WINDOW must be a whole number of seconds, got %s", c.TokenWindow))
	}
	if c.TokenGraceWindows < 0 {
		errs = append(errs, errors.New("TOKEN_GRACE_WINDOWS must not be negative"))
	}
	if c.TokenSecret != "" && len(c.TokenSecret) < qrtoken.MinSecretSize {
		errs = append(errs, fmt.Errorf("TOKEN_SECRET must be at least %d bytes", qrtoken.MinSecretSize))
	}
	if c.BearerTTL < 0 {
		errs = append(errs, errors.New("BEARER_TTL must not be negative"))
	}

	switch c.SyncMode {
	case SyncModeStub:
	case SyncModeS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required when SYNC_MODE=s3"))
		}
	default:
		errs = append(errs, fmt.Errorf("SYNC_MODE must be %q or %q, got %q", SyncModeStub, SyncModeS3, c.SyncMode))
	}

	if c.IsProd() {
		if c.TokenSecret == "" && c.TokenSecretFile == "" {
			errs = append(errs, errors.New("TOKEN_SECRET or TOKEN_SECRET_FILE is required in prod"))
		}
		if c.AdminPassword == "" {
			errs = append(errs, errors.New("ADMIN_PASSWORD is required in prod"))
		}
		// OTP codes are delivered through the log at debug level.
		if slogx.ParseLevel(c.LogLevel) <= slog.LevelDebug {
			errs = append(errs, errors.New("LOG_LEVEL=debug is not allowed in prod"))
		}
	}

	return errors.Join(errs...)
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
	return getEnvDurationUnitOrDefault(key, defaultValue, time.Second)
}

// getEnvMinutesOrDefault is getEnvDurationOrDefault with bare integers read
// as minutes.
func getEnvMinutesOrDefault(key string, defaultValue time.Duration) time.Duration {
	return getEnvDurationUnitOrDefault(key, defaultValue, time.Minute)
}

func getEnvDurationUnitOrDefault(key string, defaultValue, unit time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as an integer count of unit
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * unit
	}

	return defaultValue
}
