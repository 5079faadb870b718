package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.Auth.Username != "admin" || cfg.Auth.Password != "admin123" {
		t.Fatalf("unexpected auth %+v", cfg.Auth)
	}
	if cfg.API.Timeout != 0 {
		t.Fatalf("expected no client timeout by default, got %v", cfg.API.Timeout)
	}
	if cfg.Baseline.PollInterval != time.Second || cfg.Baseline.Timeout != 30*time.Second {
		t.Fatalf("unexpected baseline %+v", cfg.Baseline)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := []byte("api:\n  base_url: http://motors.local/api\n  timeout: 5s\nbaseline:\n  timeout: 1m\nlog:\n  level: debug\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MOTORSEED_AUTH_PASSWORD", "s3cret")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://motors.local/api" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Baseline.Timeout != time.Minute {
		t.Fatalf("baseline timeout = %v", cfg.Baseline.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
	if cfg.Auth.Password != "s3cret" {
		t.Fatalf("env override not applied, password = %q", cfg.Auth.Password)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		API:      APIConfig{BaseURL: "http://x"},
		Auth:     AuthConfig{Username: "admin"},
		Baseline: BaselineConfig{PollInterval: time.Second, Timeout: 10 * time.Second},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = " " }},
		{"empty username", func(c *Config) { c.Auth.Username = "" }},
		{"zero poll interval", func(c *Config) { c.Baseline.PollInterval = 0 }},
		{"timeout shorter than interval", func(c *Config) { c.Baseline.Timeout = time.Millisecond }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
