package main

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) Config {
	t.Helper()
	var cfg Config
	require.NoError(t, envconfig.Process("KRONSOLVE_TEST_UNSET", &cfg))
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := defaultConfig(t)
	assert.Equal(t, "continuity_2", cfg.Equation)
	assert.Equal(t, 2, cfg.Level)
	assert.Equal(t, 2, cfg.Degree)
	assert.Equal(t, 10, cfg.Steps)
	assert.Equal(t, 0.01, cfg.CFL)
	assert.Equal(t, 1, cfg.Chunks)
	assert.Equal(t, "double", cfg.Precision)
	assert.Equal(t, "text", cfg.LogFormat)

	assert.NoError(t, ValidateConfig(&cfg))
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("KRONSOLVE_PDE", "continuity_3")
	t.Setenv("KRONSOLVE_LEVEL", "4")
	t.Setenv("KRONSOLVE_PRECISION", "single")

	var cfg Config
	require.NoError(t, envconfig.Process("KRONSOLVE", &cfg))
	assert.Equal(t, "continuity_3", cfg.Equation)
	assert.Equal(t, 4, cfg.Level)
	assert.Equal(t, "single", cfg.Precision)
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty equation", func(c *Config) { c.Equation = "" }, ErrInvalidEquation},
		{"negative level", func(c *Config) { c.Level = -1 }, ErrInvalidLevel},
		{"zero degree", func(c *Config) { c.Degree = 0 }, ErrInvalidDegree},
		{"zero steps", func(c *Config) { c.Steps = 0 }, ErrInvalidSteps},
		{"zero cfl", func(c *Config) { c.CFL = 0 }, ErrInvalidCFL},
		{"zero chunks", func(c *Config) { c.Chunks = 0 }, ErrInvalidChunks},
		{"bad precision", func(c *Config) { c.Precision = "half" }, ErrInvalidPrecision},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, ErrInvalidLogFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			c.mutate(&cfg)
			assert.ErrorIs(t, ValidateConfig(&cfg), c.want)
		})
	}
}

func TestRunSmoke(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Equation = "continuity_1"
	cfg.Level = 2
	cfg.Steps = 2

	require.NoError(t, run[float64](cfg, discardLogger()))
	require.NoError(t, run[float32](cfg, discardLogger()))
}

func TestRunRejectsUnknownEquation(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Equation = "advection_9"
	assert.Error(t, run[float64](cfg, discardLogger()))
}
