package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
server:
  host: "127.0.0.1"
  port: 7440
data:
  dir: "/var/lib/ironforge"
  migrations_path: "migrations"
user:
  email: "lifter@example.com"
  name: "Lifter"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all
// fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 7440 {
		t.Errorf("server.port = %d, want 7440", cfg.Server.Port)
	}
	if cfg.Data.Dir != "/var/lib/ironforge" {
		t.Errorf("data.dir = %q, want %q", cfg.Data.Dir, "/var/lib/ironforge")
	}
	if cfg.User.Email != "lifter@example.com" {
		t.Errorf("user.email = %q, want %q", cfg.User.Email, "lifter@example.com")
	}
}

// TestEnvOverride verifies that IRONFORGE_ env vars take precedence over
// YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("IRONFORGE_DATA_DIR", "/tmp/override")
	t.Setenv("IRONFORGE_SERVER_PORT", "9999")
	t.Setenv("IRONFORGE_USER_EMAIL", "env@example.com")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Dir != "/tmp/override" {
		t.Errorf("data.dir = %q, want %q", cfg.Data.Dir, "/tmp/override")
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.User.Email != "env@example.com" {
		t.Errorf("user.email = %q, want %q", cfg.User.Email, "env@example.com")
	}
	// Unchanged fields keep YAML values.
	if cfg.User.Name != "Lifter" {
		t.Errorf("user.name = %q, want %q", cfg.User.Name, "Lifter")
	}
}

// TestDefaults verifies loopback host and the migrations path default in
// when omitted.
func TestDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
server:
  port: 7440
data:
  dir: "/var/lib/ironforge"
user:
  email: "lifter@example.com"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want loopback default", cfg.Server.Host)
	}
	if cfg.Data.MigrationsPath != "migrations" {
		t.Errorf("migrations_path = %q, want %q", cfg.Data.MigrationsPath, "migrations")
	}
}

// TestValidation verifies required fields are enforced.
func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{"missing port", "data:\n  dir: /d\nuser:\n  email: a@b.c\n", "server.port"},
		{"missing data dir", "server:\n  port: 7440\nuser:\n  email: a@b.c\n", "data.dir"},
		{"missing email", "server:\n  port: 7440\ndata:\n  dir: /d\n", "user.email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tt.yaml))
			if err == nil {
				t.Fatal("Load succeeded, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

// TestLoadMissingFile verifies a useful error when the file is absent.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("Load succeeded on missing file")
	}
}
