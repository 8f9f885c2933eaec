package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, ".")
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "INFO")
	}
	if cfg.BufferBytes != 64*1024 {
		t.Errorf("BufferBytes = %d, want %d", cfg.BufferBytes, 64*1024)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MinScore != 0.0 {
		t.Errorf("MinScore = %v, want 0.0", cfg.MinScore)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "namelink.yaml")
	content := "workers: 8\nmin_score: 0.85\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.MinScore != 0.85 {
		t.Errorf("MinScore = %v, want 0.85", cfg.MinScore)
	}
	// Fields absent from the file keep their defaults.
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "INFO")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("workers: [not-a-map"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestGetAppConfigPaths(t *testing.T) {
	paths := GetAppConfigPaths("namelink")
	if len(paths) == 0 {
		t.Fatal("expected at least one config path")
	}
	found := false
	for _, p := range paths {
		if strings.Contains(p, "namelink") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a path containing %q, got %v", "namelink", paths)
	}
}
