package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/webstrap-cli/webstrap/internal/defs"
)

// Loader reads the configuration file from a config directory.
type Loader struct{}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads config.yaml from the given directory and returns a Config
// with defaults applied for missing fields. A missing file yields the
// defaults; an unparseable or invalid file is skipped with a warning
// rather than aborting the command.
func (l *Loader) Load(configDir string) (*Config, error) {
	path := filepath.Join(filepath.Clean(configDir), defs.ConfigYAML)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := l.parse(data)
	if err != nil {
		slog.Warn("config file is invalid, using defaults", "path", path, "error", err)
		return NewDefaultConfig(), nil
	}
	return cfg, nil
}

// parse unmarshals and validates raw config bytes, filling empty fields
// from the compiled defaults.
func (l *Loader) parse(data []byte) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	applyDefaultFallbacks(cfg)
	return cfg, nil
}

// applyDefaultFallbacks fills fields left empty in the file with the
// compiled defaults.
func applyDefaultFallbacks(cfg *Config) {
	def := NewDefaultConfig()
	if cfg.Defaults.ProjectName == "" {
		cfg.Defaults.ProjectName = def.Defaults.ProjectName
	}
	if cfg.Defaults.Framework == "" {
		cfg.Defaults.Framework = def.Defaults.Framework
	}
	if cfg.Defaults.Language == "" {
		cfg.Defaults.Language = def.Defaults.Language
	}
	if cfg.Defaults.UILibrary == "" {
		cfg.Defaults.UILibrary = def.Defaults.UILibrary
	}
	if cfg.System.LogLevel == "" {
		cfg.System.LogLevel = def.System.LogLevel
	}
	if cfg.System.LogFormat == "" {
		cfg.System.LogFormat = def.System.LogFormat
	}
}
