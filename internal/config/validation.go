package config

import "fmt"

// Validate checks a loaded configuration for invalid enum values.
// Empty strings are allowed and fall back to compiled defaults.
func Validate(cfg *Config) error {
	if cfg.System.LogLevel != "" && !IsValidLogLevel(cfg.System.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.System.LogLevel)
	}
	if cfg.System.LogFormat != "" && !IsValidLogFormat(cfg.System.LogFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.System.LogFormat)
	}
	if cfg.Defaults.Framework != "" && !IsValidFramework(cfg.Defaults.Framework) {
		return fmt.Errorf("%w: %q", ErrInvalidDefault, cfg.Defaults.Framework)
	}
	if cfg.Defaults.Language != "" && !IsValidLanguage(cfg.Defaults.Language) {
		return fmt.Errorf("%w: %q", ErrInvalidDefault, cfg.Defaults.Language)
	}
	if cfg.Defaults.UILibrary != "" && !IsValidUILibrary(cfg.Defaults.UILibrary) {
		return fmt.Errorf("%w: %q", ErrInvalidDefault, cfg.Defaults.UILibrary)
	}
	return nil
}
