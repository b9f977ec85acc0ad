package config

// Config is the root configuration structure
type Config struct {
	Version int          `yaml:"version"`
	Log     LogConfig    `yaml:"log"`
	Hooks   HooksConfig  `yaml:"hooks"`
	Output  OutputConfig `yaml:"output"`

	// Seed lists message texts created when the application starts
	Seed []string `yaml:"seed,omitempty"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// HooksConfig toggles the built-in hooks on the messages service
type HooksConfig struct {
	Validate   bool `yaml:"validate"`
	Timestamps bool `yaml:"timestamps"`
	LogCalls   bool `yaml:"log_calls"`
}

// OutputConfig holds CLI rendering settings
type OutputConfig struct {
	Format string `yaml:"format"` // json, yaml
}
