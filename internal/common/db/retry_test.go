package db

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jackc/pgconn"

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

var fastRetry = RetryConfig{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2,
}

func TestRetryWithBackoff_RetriesTransientErrors(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), testLogger(t), fastRetry, func() error {
		attempts++
		if attempts < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetryWithBackoff_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("syntax error")
	attempts := 0
	err := RetryWithBackoff(context.Background(), testLogger(t), fastRetry, func() error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Errorf("expected permanent error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestRetryWithBackoff_GivesUp(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), testLogger(t), fastRetry, func() error {
		attempts++
		return &pgconn.PgError{Code: "08006"}
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != fastRetry.MaxAttempts {
		t.Errorf("expected %d attempts, got %d", fastRetry.MaxAttempts, attempts)
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastRetry
	cfg.InitialDelay = time.Second
	err := RetryWithBackoff(ctx, testLogger(t), cfg, func() error {
		return &pgconn.PgError{Code: "40P01"}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "postgres other", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestExtractTableFromOperation(t *testing.T) {
	tests := map[string]string{
		"create inquiry":        "rental_inquiries",
		"list inquiries":        "rental_inquiries",
		"find user by username": "users",
		"ping":                  "unknown",
	}
	for op, want := range tests {
		if got := extractTableFromOperation(op); got != want {
			t.Errorf("%s: expected %s, got %s", op, want, got)
		}
	}
}
