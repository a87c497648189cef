package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flannelman48/whirly-rentals-website/internal/common/constants"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "", "whirly", "warn")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "[WARNING] [whirly]") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "logger_test.go:") {
		t.Errorf("expected caller file in output, got %q", out)
	}
}

func TestLogger_WithFieldsAndTraceID(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "", "whirly", "debug")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx := context.WithValue(context.Background(), constants.TraceIDKey, "abc123")
	log.WithFields(ctx, Fields{"b": 2, "a": 1}).Info("stored")

	out := buf.String()
	if !strings.Contains(out, "[trace_id=abc123 a=1 b=2]") {
		t.Errorf("expected sorted fields with trace id, got %q", out)
	}
	if !strings.Contains(out, "logger_test.go:") {
		t.Errorf("expected caller file in output, got %q", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log, _ := NewWithWriter(&buf, "", "", "error")

	if log.ShouldLog(INFO) {
		t.Error("info should be disabled at error level")
	}
	log.SetLevel("debug")
	if !log.ShouldLog(DEBUG) {
		t.Error("debug should be enabled after SetLevel")
	}
}

func TestLogger_WritesFileInLogDir(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, dir, "whirly", "info")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Info("to file")
	if err := log.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "whirly.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("expected message in log file, got %q", data)
	}
}
