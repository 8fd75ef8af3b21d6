// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3319 {
		t.Errorf("expected default port 3319, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "memory" {
		t.Errorf("expected default type 'memory', got %q", cfg.DatabaseType)
	}
	if cfg.BaseURL != "http://localhost:3319" {
		t.Errorf("expected base URL derived from port, got %q", cfg.BaseURL)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "sqlite")
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("BASE_URL", "https://movies.example.com")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected type 'sqlite', got %q", cfg.DatabaseType)
	}
	if cfg.BaseURL != "https://movies.example.com" {
		t.Errorf("expected env base URL, got %q", cfg.BaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "sqlite", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_InvalidType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mongodb"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_SQLRequiresURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("expected error when SQL backend has no URL")
	}

	// The memory backend needs no URL
	if _, err := ParseFlags([]string{"-t", "memory"}); err != nil {
		t.Errorf("memory backend should not require a URL: %v", err)
	}
}
