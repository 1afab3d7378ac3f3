// Package config loads pokersolver settings from an HCL file, a .env file
// and the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variable names that override file settings
const (
	// EnvConfig points at the HCL config file
	EnvConfig = "POKERSOLVER_CONFIG"

	// EnvWorkers sets the number of search goroutines
	EnvWorkers = "POKERSOLVER_WORKERS"

	// EnvLogLevel sets the log level (debug, info, warn, error)
	EnvLogLevel = "POKERSOLVER_LOG_LEVEL"

	// EnvColor sets colour output (auto, always, never)
	EnvColor = "POKERSOLVER_COLOR"

	// EnvTrace enables search tracing
	EnvTrace = "POKERSOLVER_TRACE"
)

// DefaultFile is the config file read when none is given.
const DefaultFile = "pokersolver.hcl"

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the CLI settings.
type Config struct {
	Workers  int    `hcl:"workers,optional"`
	LogLevel string `hcl:"log_level,optional"`
	Color    string `hcl:"color,optional"`
	Trace    bool   `hcl:"trace,optional"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Workers:  1,
		LogLevel: "info",
		Color:    ColorAuto,
	}
}

// LoadFile reads an HCL config file. A missing file yields the defaults.
func LoadFile(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// named) without overriding ones already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTrace); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvTrace, err)
		}
		c.Trace = b
	}
	return nil
}

// Load reads the .env file, the config file (EnvConfig or DefaultFile when
// filename is empty) and then environment overrides, and validates the result.
func Load(filename string) (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if filename == "" {
		filename = os.Getenv(EnvConfig)
	}
	if filename == "" {
		filename = DefaultFile
	}

	cfg, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode: %s", c.Color)
	}

	return nil
}
