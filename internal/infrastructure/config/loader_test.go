package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/async-logger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/async-logger/internal/domain/error"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Empty(t, cfg.Sink.Path)
	assert.Equal(t, "MEDIUM", cfg.Sink.Threshold)
	assert.Equal(t, entity.SeverityMedium, cfg.Threshold())
	assert.Equal(t, "warn", cfg.Diagnostics.Level)
	assert.Equal(t, "> ", cfg.Shell.Prompt)
	assert.True(t, cfg.Shell.Banner)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("ALOG_ENV", "PRODUCTION")
	t.Setenv("ALOG_SINK_PATH", "/var/log/alog.log")
	t.Setenv("ALOG_SINK_THRESHOLD", "PRIORITY")
	t.Setenv("ALOG_DIAGNOSTICS_LEVEL", "debug")
	t.Setenv("ALOG_SHELL_BANNER", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/var/log/alog.log", cfg.Sink.Path)
	assert.Equal(t, entity.SeverityHigh, cfg.Threshold())
	assert.Equal(t, "debug", cfg.Diagnostics.Level)
	assert.False(t, cfg.Shell.Banner)
}

func TestApplyArgs(t *testing.T) {
	testCases := []struct {
		name          string
		envPath       string
		args          []string
		wantPath      string
		wantThreshold string
		wantErr       bool
	}{
		{"Path only", "", []string{"app.log"}, "app.log", "MEDIUM", false},
		{"Path and level", "", []string{"app.log", "HIGH"}, "app.log", "HIGH", false},
		{"Args override env", "env.log", []string{"app.log"}, "app.log", "MEDIUM", false},
		{"Env path without args", "env.log", nil, "env.log", "MEDIUM", false},
		{"Missing path", "", nil, "", "MEDIUM", true},
		{"Too many args", "", []string{"a.log", "HIGH", "extra"}, "", "MEDIUM", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Sink: SinkConfig{Path: tc.envPath, Threshold: "MEDIUM"}}

			err := ApplyArgs(cfg, tc.args)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidArguments)
				assert.Equal(t, errs.ExitCodeUsage, errs.ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, cfg.Sink.Path)
			assert.Equal(t, tc.wantThreshold, cfg.Sink.Threshold)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Development,
			Sink:        SinkConfig{Path: "app.log", Threshold: "LOW"},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Validate(valid()))
	})

	t.Run("Missing sink path", func(t *testing.T) {
		cfg := valid()
		cfg.Sink.Path = ""
		err := Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "sink.path")
	})

	t.Run("Invalid environment", func(t *testing.T) {
		cfg := valid()
		cfg.Environment = "staging"
		assert.ErrorIs(t, Validate(cfg), errs.ErrInvalidConfig)
	})

	t.Run("Invalid diagnostics format", func(t *testing.T) {
		cfg := valid()
		cfg.Diagnostics.Format = "xml"
		assert.ErrorIs(t, Validate(cfg), errs.ErrInvalidConfig)
	})
}
