package config

// NewDefaultConfig returns the compiled-in default configuration used
// when no config file exists or a section is missing.
func NewDefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			ProjectName: "my-app",
			Framework:   "next",
			Language:    "ts",
			UILibrary:   "none",
		},
		System: SystemConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
	}
}
