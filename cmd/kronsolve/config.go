package main

import "errors"

// Config validation errors
var (
	ErrInvalidEquation  = errors.New("pde must name a registered equation")
	ErrInvalidLevel     = errors.New("level must be non-negative")
	ErrInvalidDegree    = errors.New("degree must be positive")
	ErrInvalidSteps     = errors.New("steps must be positive")
	ErrInvalidCFL       = errors.New("cfl must be positive")
	ErrInvalidChunks    = errors.New("chunks must be positive")
	ErrInvalidPrecision = errors.New("precision must be 'double' or 'single'")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'text'")
)

// Config is the solver's runtime configuration, populated from the
// environment (KRONSOLVE_ prefix) with flag overrides.
type Config struct {
	Equation  string  `envconfig:"PDE" default:"continuity_2"`
	Level     int     `envconfig:"LEVEL" default:"2"`
	Degree    int     `envconfig:"DEGREE" default:"2"`
	Steps     int     `envconfig:"STEPS" default:"10"`
	CFL       float64 `envconfig:"CFL" default:"0.01"`
	Chunks    int     `envconfig:"CHUNKS" default:"1"`
	Precision string  `envconfig:"PRECISION" default:"double"`
	LogFormat string  `envconfig:"LOG_FORMAT" default:"text"`
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.Equation == "" {
		return ErrInvalidEquation
	}
	if cfg.Level < 0 {
		return ErrInvalidLevel
	}
	if cfg.Degree < 1 {
		return ErrInvalidDegree
	}
	if cfg.Steps < 1 {
		return ErrInvalidSteps
	}
	if cfg.CFL <= 0 {
		return ErrInvalidCFL
	}
	if cfg.Chunks < 1 {
		return ErrInvalidChunks
	}
	if cfg.Precision != "double" && cfg.Precision != "single" {
		return ErrInvalidPrecision
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return ErrInvalidLogFormat
	}
	return nil
}
