// Package config provides configuration for movegen: defaults, a fluent
// builder, YAML loading and validation.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`
	REPL   REPLConfig   `yaml:"repl"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Format selects the zap encoder
	Format string `yaml:"format" validate:"oneof=console json"`
	// File receives log output; empty means stderr
	File string `yaml:"file"`
}

// BatchConfig holds settings for batch analysis of FEN lists.
type BatchConfig struct {
	// Workers is the number of worker goroutines (0 = one per CPU)
	Workers int `yaml:"workers" validate:"min=0,max=256"`
	// PerftDepth is run on every position; 0 disables perft
	PerftDepth int `yaml:"perft_depth" validate:"min=0,max=8"`
	// Duplicates controls repeated-position detection
	Duplicates DuplicateConfig `yaml:"duplicates"`
}

// REPLConfig holds interactive shell settings.
type REPLConfig struct {
	Prompt string `yaml:"prompt" validate:"required"`
	// HistoryFile is where readline keeps history; empty disables it
	HistoryFile string `yaml:"history_file"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: *NewOutputConfig(),
		Batch: BatchConfig{
			PerftDepth: 0,
			Duplicates: *NewDuplicateConfig(),
		},
		REPL: REPLConfig{
			Prompt: "movegen> ",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is user-specified config file
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Keys absent from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints. Failures match errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}

	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		details.WriteString(describe(fe))
	}
	return fmt.Errorf("%w: %s", errors.ErrInvalidConfig, details.String())
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
