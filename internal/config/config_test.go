// File path: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TemplatesDir != "templates" {
		t.Fatalf("TemplatesDir = %q", cfg.TemplatesDir)
	}
	if cfg.StorePath != "lexdraft.db" {
		t.Fatalf("StorePath = %q", cfg.StorePath)
	}
	if cfg.Translation.Provider != "mymemory" || cfg.Translation.Timeout != 5*time.Second {
		t.Fatalf("Translation = %+v", cfg.Translation)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
templates_dir: /srv/templates
store_path: /var/lib/lexdraft/history.db
translation:
  provider: llm
  timeout: 10s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TemplatesDir != "/srv/templates" {
		t.Fatalf("TemplatesDir = %q", cfg.TemplatesDir)
	}
	if cfg.Translation.Provider != "llm" || cfg.Translation.Timeout != 10*time.Second {
		t.Fatalf("Translation = %+v", cfg.Translation)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LEXDRAFT_TEMPLATES", "/opt/tpl")
	t.Setenv("LEXDRAFT_STORE", "/opt/history.db")
	t.Setenv("LEXDRAFT_TRANSLATE_PROVIDER", "llm")
	t.Setenv("LEXDRAFT_TRANSLATE_TIMEOUT", "2s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TemplatesDir != "/opt/tpl" || cfg.StorePath != "/opt/history.db" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Translation.Provider != "llm" || cfg.Translation.Timeout != 2*time.Second {
		t.Fatalf("Translation = %+v", cfg.Translation)
	}
}

func TestInvalidTimeoutEnvIgnored(t *testing.T) {
	t.Setenv("LEXDRAFT_TRANSLATE_TIMEOUT", "soon")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Translation.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %v", cfg.Translation.Timeout)
	}
}
