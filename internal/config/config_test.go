package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  tokenSecret: "s3cret"
server:
  postgresDsn: "host=localhost"
`)

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if conf.Server.Listen != ":8000" {
		t.Fatalf("expected default listen, got %q", conf.Server.Listen)
	}
	if conf.Auth.SessionCookie != "vc_session" {
		t.Fatalf("expected default cookie name, got %q", conf.Auth.SessionCookie)
	}
	if conf.Server.PostgresDsn != "host=localhost" {
		t.Fatalf("unexpected dsn %q", conf.Server.PostgresDsn)
	}
}

func TestLoadRequiresTokenSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9000"
`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing tokenSecret")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
