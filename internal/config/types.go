// Package config loads and persists the user-level webstrap
// configuration stored at ~/.webstrap/config.yaml.
package config

import "slices"

// Config is the root configuration aggregate.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	System   SystemConfig   `yaml:"system"`
}

// DefaultsConfig holds wizard pre-selections. Values here become the
// highlighted defaults when `webstrap init` runs interactively.
type DefaultsConfig struct {
	ProjectName string `yaml:"project_name"`
	Framework   string `yaml:"framework"`  // "next", "react"
	Language    string `yaml:"language"`   // "ts", "js"
	UILibrary   string `yaml:"ui_library"` // "none", "shadcn", "antd"
}

// SystemConfig holds CLI behavior settings.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

var validLogFormats = []string{"text", "json"}

var validFrameworks = []string{"next", "react"}

var validLanguages = []string{"ts", "js"}

var validUILibraries = []string{"none", "shadcn", "antd"}

// IsValidLogLevel checks the given log level name.
func IsValidLogLevel(level string) bool {
	return slices.Contains(validLogLevels, level)
}

// IsValidLogFormat checks the given log format name.
func IsValidLogFormat(format string) bool {
	return slices.Contains(validLogFormats, format)
}

// IsValidFramework checks the given framework name.
func IsValidFramework(fw string) bool {
	return slices.Contains(validFrameworks, fw)
}

// IsValidLanguage checks the given language name.
func IsValidLanguage(lang string) bool {
	return slices.Contains(validLanguages, lang)
}

// IsValidUILibrary checks the given UI library name.
func IsValidUILibrary(lib string) bool {
	return slices.Contains(validUILibraries, lib)
}
