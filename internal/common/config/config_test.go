package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoadWhirlyConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_BACKEND", "GS_WEBHOOK_URL", "WHIRLY_SECRET", "STATIC_DIR"} {
		unsetEnv(t, key)
	}

	cfg, err := LoadWhirlyConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "5000" {
		t.Errorf("expected port 5000, got %s", cfg.HTTPPort)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("expected memory backend, got %s", cfg.Storage.Backend)
	}
	if cfg.Webhook.URL != "" || cfg.Webhook.Secret != "" {
		t.Error("expected empty webhook settings")
	}
	if cfg.Webhook.Timeout != 15*time.Second {
		t.Errorf("expected webhook timeout 15s, got %v", cfg.Webhook.Timeout)
	}
}

func TestLoadWhirlyConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/w.db")
	t.Setenv("GS_WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("WHIRLY_SECRET", "s3cret")
	t.Setenv("WEBHOOK_TIMEOUT", "3s")
	t.Setenv("WEBHOOK_BREAKER_THRESHOLD", "not-a-number")

	cfg, err := LoadWhirlyConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.Storage.Backend != BackendSQLite || cfg.Storage.SQLitePath != "/tmp/w.db" {
		t.Errorf("unexpected storage %+v", cfg.Storage)
	}
	if cfg.Webhook.URL != "https://example.com/hook" || cfg.Webhook.Secret != "s3cret" {
		t.Errorf("unexpected webhook %+v", cfg.Webhook)
	}
	if cfg.Webhook.Timeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.Webhook.Timeout)
	}
	if cfg.Webhook.BreakerThreshold != 5 {
		t.Errorf("expected fallback threshold 5, got %d", cfg.Webhook.BreakerThreshold)
	}
}

func TestLoadWhirlyConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "postgres without url",
			env:     map[string]string{"STORAGE_BACKEND": "postgres", "DATABASE_URL": ""},
			wantErr: ErrMissingRequiredEnv,
		},
		{
			name:    "unknown backend",
			env:     map[string]string{"STORAGE_BACKEND": "redis"},
			wantErr: ErrInvalidStorageBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWhirlyConfig()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
