package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/flannelman48/whirly-rentals-website/internal/common/constants"
)

var (
	ErrMissingRequiredEnv    = errors.New("missing required environment variable")
	ErrInvalidStorageBackend = errors.New("invalid storage backend")
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type StorageConfig struct {
	Backend     string
	DatabaseURL string
	SQLitePath  string
}

// WebhookConfig is read at startup but validated per request, so a missing
// value only fails the submit endpoint.
type WebhookConfig struct {
	URL              string
	Secret           string
	Timeout          time.Duration
	BreakerThreshold int
	BreakerReset     time.Duration
}

type WhirlyConfig struct {
	HTTPPort       string
	RequestTimeout time.Duration
	StaticDir      string
	LogDir         string
	LogLevel       string
	Storage        StorageConfig
	Webhook        WebhookConfig
}

// Load reads an optional .env file and then the process environment.
func Load() (WhirlyConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return WhirlyConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return LoadWhirlyConfig()
}

func LoadWhirlyConfig() (WhirlyConfig, error) {
	storage, err := loadStorageConfig()
	if err != nil {
		return WhirlyConfig{}, err
	}

	return WhirlyConfig{
		HTTPPort:       getEnv("PORT", constants.DefaultHTTPPort),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		StaticDir:      getEnv("STATIC_DIR", constants.DefaultStaticDir),
		LogDir:         getEnv("LOG_DIR", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Storage:        storage,
		Webhook: WebhookConfig{
			URL:              getEnv("GS_WEBHOOK_URL", ""),
			Secret:           getEnv("WHIRLY_SECRET", ""),
			Timeout:          getDurationEnv("WEBHOOK_TIMEOUT", constants.DefaultWebhookTimeout),
			BreakerThreshold: getIntEnv("WEBHOOK_BREAKER_THRESHOLD", constants.DefaultBreakerThreshold),
			BreakerReset:     getDurationEnv("WEBHOOK_BREAKER_RESET", constants.DefaultBreakerReset),
		},
	}, nil
}

func loadStorageConfig() (StorageConfig, error) {
	backend := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", constants.DefaultStorageBackend)))

	cfg := StorageConfig{Backend: backend}

	switch backend {
	case BackendMemory:
	case BackendPostgres:
		databaseURL, err := mustEnv("DATABASE_URL")
		if err != nil {
			return StorageConfig{}, err
		}
		cfg.DatabaseURL = databaseURL
	case BackendSQLite:
		cfg.SQLitePath = getEnv("SQLITE_PATH", constants.DefaultSQLitePath)
	default:
		return StorageConfig{}, fmt.Errorf("%w: %q", ErrInvalidStorageBackend, backend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
