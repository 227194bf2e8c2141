package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Framework != "next" || cfg.Defaults.Language != "ts" {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.System.LogLevel != "warn" {
		t.Errorf("log level = %q", cfg.System.LogLevel)
	}
}

func TestLoaderReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
defaults:
  framework: react
  language: js
system:
  log_level: debug
`)

	cfg, err := NewLoader().Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Framework != "react" {
		t.Errorf("framework = %q", cfg.Defaults.Framework)
	}
	if cfg.Defaults.Language != "js" {
		t.Errorf("language = %q", cfg.Defaults.Language)
	}
	if cfg.System.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.System.LogLevel)
	}

	// Unset fields fall back to compiled defaults.
	if cfg.Defaults.ProjectName != "my-app" {
		t.Errorf("project name fallback = %q", cfg.Defaults.ProjectName)
	}
	if cfg.System.LogFormat != "text" {
		t.Errorf("log format fallback = %q", cfg.System.LogFormat)
	}
}

func TestLoaderInvalidYAMLFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "defaults: [not: a: map")

	cfg, err := NewLoader().Load(dir)
	if err != nil {
		t.Fatalf("invalid YAML must not abort: %v", err)
	}
	if cfg.Defaults.Framework != "next" {
		t.Errorf("fallback defaults not applied: %+v", cfg.Defaults)
	}
}

func TestLoaderInvalidEnumFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "system:\n  log_level: loud\n")

	cfg, err := NewLoader().Load(dir)
	if err != nil {
		t.Fatalf("invalid enum must not abort: %v", err)
	}
	if cfg.System.LogLevel != "warn" {
		t.Errorf("log level = %q, want default", cfg.System.LogLevel)
	}
}

func TestLoaderInvalidFrameworkDefaultFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "defaults:\n  framework: vue\n")

	cfg, err := NewLoader().Load(dir)
	if err != nil {
		t.Fatalf("invalid default must not abort: %v", err)
	}
	if cfg.Defaults.Framework != "next" {
		t.Errorf("framework = %q, want default", cfg.Defaults.Framework)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"bad yaml", "defaults: [not: a: map", ErrInvalidYAML},
		{"bad log level", "system:\n  log_level: loud\n", ErrInvalidLogLevel},
		{"bad framework", "defaults:\n  framework: vue\n", ErrInvalidDefault},
		{"bad language", "defaults:\n  language: py\n", ErrInvalidDefault},
		{"bad ui library", "defaults:\n  ui_library: mui\n", ErrInvalidDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLoader().parse([]byte(tt.in)); !errors.Is(err, tt.want) {
				t.Errorf("parse = %v, want %v", err, tt.want)
			}
		})
	}
}
