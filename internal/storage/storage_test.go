package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/flannelman48/whirly-rentals-website/internal/common/config"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewWithWriter(io.Discard, "", "test", "error")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StorageConfig
		backend string
	}{
		{name: "memory", cfg: config.StorageConfig{Backend: config.BackendMemory}, backend: config.BackendMemory},
		{name: "sqlite", cfg: config.StorageConfig{Backend: config.BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "whirly.db")}, backend: config.BackendSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, err := Open(ctx, tt.cfg, testLogger(t))
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer s.Close(ctx)

			if s.Backend != tt.backend {
				t.Errorf("expected backend %s, got %s", tt.backend, s.Backend)
			}
			if s.Users == nil || s.Inquiries == nil {
				t.Fatal("expected repositories to be set")
			}
			if err := s.Ping(ctx); err != nil {
				t.Errorf("ping: %v", err)
			}

			list, err := s.Inquiries.List(ctx)
			if err != nil || len(list) != 0 {
				t.Errorf("expected empty list, got %v, %v", list, err)
			}
		})
	}
}

func TestOpen_InvalidBackend(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Backend: "redis"}, testLogger(t))
	if !errors.Is(err, config.ErrInvalidStorageBackend) {
		t.Errorf("expected ErrInvalidStorageBackend, got %v", err)
	}
}
