package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected info level, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected console format, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected stderr output, got %s", cfg.Output)
	}
}

func TestInitializeFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	defer InitializeDefault()

	if err := Initialize(Config{Level: "info", Format: "json", Output: path}); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	Info("quote priced")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "quote priced") {
		t.Errorf("expected log line in file, got %q", data)
	}
}

func TestInitializeLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	defer InitializeDefault()

	if err := Initialize(Config{Level: "error", Format: "json", Output: path}); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	Info("below threshold")
	Error("kept")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "below threshold") {
		t.Error("info line should be filtered at error level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Errorf("expected error line in file, got %q", data)
	}
}

func TestInitializeBadLevelFallsBack(t *testing.T) {
	defer InitializeDefault()

	if err := Initialize(Config{Level: "shouting", Output: "stderr"}); err != nil {
		t.Fatalf("bad level must fall back to info, got error: %v", err)
	}
}
