package config

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Sink        SinkConfig        `mapstructure:"sink"`
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics"`
	Shell       ShellConfig       `mapstructure:"shell"`
}

// SinkConfig contains the destination of log entries and the initial threshold
type SinkConfig struct {
	Path      string `mapstructure:"path"`
	Threshold string `mapstructure:"threshold"`
}

// DiagnosticsConfig contains settings of the stderr error channel
type DiagnosticsConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Quiet  bool   `mapstructure:"quiet"`
}

// ShellConfig contains settings of the interactive shell
type ShellConfig struct {
	Prompt string `mapstructure:"prompt"`
	Banner bool   `mapstructure:"banner"`
}
