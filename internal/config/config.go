// File path: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the process configuration, read once at startup.
type Config struct {
	TemplatesDir string      `yaml:"templates_dir"`
	StorePath    string      `yaml:"store_path"`
	CatalogPath  string      `yaml:"catalog_path,omitempty"`
	Translation  Translation `yaml:"translation"`
}

// Translation configures the machine-translation collaborator.
type Translation struct {
	// Provider selects the implementation: "mymemory" (default) or "llm".
	Provider string        `yaml:"provider"`
	BaseURL  string        `yaml:"base_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// UnmarshalYAML accepts the timeout in time.ParseDuration notation ("5s").
func (t *Translation) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Provider string `yaml:"provider"`
		BaseURL  string `yaml:"base_url"`
		Timeout  string `yaml:"timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	t.Provider = raw.Provider
	t.BaseURL = raw.BaseURL
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("translation timeout: %w", err)
		}
		t.Timeout = d
	}
	return nil
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		TemplatesDir: "templates",
		StorePath:    "lexdraft.db",
		Translation: Translation{
			Provider: "mymemory",
			Timeout:  5 * time.Second,
		},
	}
}

// Load reads the YAML config at path, falling back to defaults when the file
// does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if cfg.Translation.Timeout <= 0 {
		cfg.Translation.Timeout = 5 * time.Second
	}
	if cfg.Translation.Provider == "" {
		cfg.Translation.Provider = "mymemory"
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LEXDRAFT_TEMPLATES"); v != "" {
		c.TemplatesDir = v
	}
	if v := os.Getenv("LEXDRAFT_STORE"); v != "" {
		c.StorePath = v
	}
	if v := os.Getenv("LEXDRAFT_CATALOG"); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv("LEXDRAFT_TRANSLATE_PROVIDER"); v != "" {
		c.Translation.Provider = v
	}
	if v := os.Getenv("LEXDRAFT_TRANSLATE_URL"); v != "" {
		c.Translation.BaseURL = v
	}
	if v := os.Getenv("LEXDRAFT_TRANSLATE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Translation.Timeout = d
		}
	}
}
