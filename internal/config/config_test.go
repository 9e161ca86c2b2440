package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks the overrides so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SOLERELIEF_CONFIG", "ADDR", "WEB_DIR", "LOG_LEVEL", "DATABASE_URL", "DEFAULT_USER_ID"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DefaultUserID != "default-user" {
		t.Fatalf("defaultUserId = %q, want default-user", cfg.DefaultUserID)
	}
	if cfg.UsePostgres() {
		t.Fatal("expected in-memory storage without databaseURL")
	}
	if cfg.Source != "" {
		t.Fatalf("expected no source for a missing file, got %q", cfg.Source)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
addr: ":9090"
webDir: "dist"
logLevel: "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.WebDir != "dist" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DefaultUserID != "default-user" {
		t.Fatalf("expected default user to survive partial YAML, got %q", cfg.DefaultUserID)
	}
	if cfg.Source != path {
		t.Fatalf("source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":7070")
	t.Setenv("DATABASE_URL", "postgres://localhost/solerelief?sslmode=disable")
	t.Setenv("DEFAULT_USER_ID", "someone")

	path := writeConfig(t, `
addr: ":9090"
databaseURL: ""
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("addr = %q, want :7070", cfg.Addr)
	}
	if !cfg.UsePostgres() {
		t.Fatal("expected postgres when DATABASE_URL is set")
	}
	if cfg.DefaultUserID != "someone" {
		t.Fatalf("defaultUserId = %q, want someone", cfg.DefaultUserID)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "addr: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsEmptyAddr(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `addr: " "`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
