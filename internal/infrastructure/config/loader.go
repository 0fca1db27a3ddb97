package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/amirhossein-jamali/async-logger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/async-logger/internal/domain/error"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable read by the loader
const EnvPrefix = "ALOG"

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
}

// Usage is printed when the command line is malformed
const Usage = "usage: alog <logfile> [LEVEL]"

// LoadConfig reads configuration from ALOG_* environment variables.
// A .env file, when present, is loaded into the environment first.
func LoadConfig() (*Config, error) {
	_ = loadDotEnvFile()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("environment", EnvPrefix+"_ENV", EnvPrefix+"_ENVIRONMENT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = strings.ToLower(config.Environment)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found; existing variables win
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", Development)

	v.SetDefault("sink.path", "")
	v.SetDefault("sink.threshold", entity.DefaultSeverity.String())

	v.SetDefault("diagnostics.level", "warn")
	v.SetDefault("diagnostics.format", "")
	v.SetDefault("diagnostics.quiet", false)

	v.SetDefault("shell.prompt", "> ")
	v.SetDefault("shell.banner", true)
}

// ApplyArgs overrides the sink settings with positional arguments: <logfile> [LEVEL].
// The logfile may be omitted only when ALOG_SINK_PATH is set.
func ApplyArgs(cfg *Config, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("%w: too many arguments", errs.ErrInvalidArguments)
	}
	if len(args) >= 1 {
		cfg.Sink.Path = args[0]
	}
	if len(args) == 2 {
		cfg.Sink.Threshold = args[1]
	}
	if cfg.Sink.Path == "" {
		return fmt.Errorf("%w: log file is required", errs.ErrInvalidArguments)
	}
	return nil
}

// Validate ensures all required configuration values are present
func Validate(cfg *Config) error {
	var missingConfigs []string

	if cfg.Sink.Path == "" {
		missingConfigs = append(missingConfigs, "sink.path")
	}

	if cfg.Environment != Development &&
		cfg.Environment != Production &&
		cfg.Environment != Test {
		return fmt.Errorf("%w: invalid environment value: %s, must be one of: %s, %s, or %s",
			errs.ErrInvalidConfig, cfg.Environment, Development, Production, Test)
	}

	switch strings.ToLower(cfg.Diagnostics.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: invalid diagnostics format: %s", errs.ErrInvalidConfig, cfg.Diagnostics.Format)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("%w: missing required configurations: %v", errs.ErrInvalidConfig, missingConfigs)
	}

	return nil
}

// Threshold returns the parsed initial threshold
func (c *Config) Threshold() entity.Severity {
	return entity.ParseSeverity(c.Sink.Threshold)
}

// IsProduction reports whether the production environment is selected
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
