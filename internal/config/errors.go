package config

import "errors"

// Error definitions for the config package.
var (
	// ErrInvalidYAML indicates a config file that could not be parsed.
	ErrInvalidYAML = errors.New("invalid YAML in config file")
	// ErrNotInitialized indicates Manager use before Load().
	ErrNotInitialized = errors.New("config manager not initialized, call Load() first")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat indicates an unknown log format name.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidDefault indicates a wizard default outside its enum.
	ErrInvalidDefault = errors.New("invalid wizard default")
)
