package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Schema != "public" {
		t.Errorf("Expected schema to be 'public', got '%s'", cfg.Schema)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}
	if cfg.Seed == 0 {
		t.Error("Expected a fixed non-zero default seed")
	}
	if len(cfg.Preserve) == 0 {
		t.Error("Expected a non-empty catalog preserve list")
	}
}

func TestCountFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Counts = map[string]int{"guests": 12}

	if got := cfg.CountFor("guests", 200); got != 12 {
		t.Errorf("Expected override 12, got %d", got)
	}
	if got := cfg.CountFor("rooms", 300); got != 300 {
		t.Errorf("Expected fallback 300, got %d", got)
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URLEnv = "ROOMSEED_TEST_DB_URL"

	os.Unsetenv("ROOMSEED_TEST_DB_URL")
	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected an error when the environment variable is unset")
	}

	t.Setenv("ROOMSEED_TEST_DB_URL", "postgres://localhost/roomseed")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if url != "postgres://localhost/roomseed" {
		t.Errorf("Expected the configured URL, got '%s'", url)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}

	cfg.Schema = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected empty schema to be rejected")
	}
}

func TestWriteDefault(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "roomseed-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if err := WriteDefault(); err != nil {
		t.Fatalf("Failed to write default config: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tempDir, FileName)); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", FileName)
	}

	if err := WriteDefault(); err == nil {
		t.Error("Expected second write to fail, but it succeeded")
	}
}
