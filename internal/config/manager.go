package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/webstrap-cli/webstrap/internal/defs"
)

// Manager provides thread-safe access to the user configuration.
// It must be initialized via Load() before use.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	dir    string
	loader *Loader
}

// NewManager creates a Manager in uninitialized state.
func NewManager() *Manager {
	return &Manager{loader: NewLoader()}
}

// DefaultDir returns the per-user config directory, ~/.webstrap.
// The WEBSTRAP_CONFIG_DIR environment variable overrides it.
func DefaultDir() (string, error) {
	if envDir := os.Getenv("WEBSTRAP_CONFIG_DIR"); envDir != "" {
		return filepath.Clean(envDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defs.ConfigDirName), nil
}

// Load reads the configuration from the given directory. Environment
// variable overrides are applied after file values.
func (m *Manager) Load(configDir string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.loader.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	applyEnvOverrides(cfg)

	m.config = cfg
	m.dir = configDir
	return cfg, nil
}

// Get returns the current in-memory configuration, or nil before Load().
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Save persists the current configuration to disk atomically using a
// temp file and os.Rename.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return ErrNotInitialized
	}

	if err := os.MkdirAll(m.dir, defs.DirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return atomicWrite(filepath.Join(m.dir, defs.ConfigYAML), data)
}

// applyEnvOverrides applies environment variable overrides, which take
// priority over file values.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("WEBSTRAP_LOG_LEVEL"); level != "" && IsValidLogLevel(level) {
		cfg.System.LogLevel = level
	}
	if format := os.Getenv("WEBSTRAP_LOG_FORMAT"); format != "" && IsValidLogFormat(format) {
		cfg.System.LogFormat = format
	}
	if noColor := os.Getenv("NO_COLOR"); noColor != "" {
		cfg.System.NoColor = true
	}
	if nonInteractive := os.Getenv("WEBSTRAP_NON_INTERACTIVE"); nonInteractive == "true" || nonInteractive == "1" {
		cfg.System.NonInteractive = true
	}
}

// atomicWrite writes data to a file atomically via temp file + rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".webstrap-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
