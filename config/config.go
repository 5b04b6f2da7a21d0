package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/crc/internal/adapters/compression"
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/internal/core/services/scanner"
	"github.com/iamNilotpal/crc/pkg/errors"
)

type Config struct {
	Scan     ScanConfig `yaml:"scan"`
	LogLevel string     `yaml:"log_level"` // debug, info, warn or error
}

// Holds input reading configuration
type ScanConfig struct {
	BufferSize    uint32        `yaml:"buffer_size"`     // Read chunk size, power of two
	Concurrency   uint16        `yaml:"concurrency"`     // Inputs read in parallel
	ReadRateLimit uint64        `yaml:"read_rate_limit"` // Bytes per second, 0 for unlimited
	Timeout       time.Duration `yaml:"timeout"`         // Per input, 0 for none
	Recursive     bool          `yaml:"recursive"`       // Walk directories
	Exclude       []string      `yaml:"exclude"`         // Directory names to skip, matched exactly
	Decompress    bool          `yaml:"decompress"`      // Checksum decoded content of compressed inputs
	Format        string        `yaml:"format"`          // Force one compression format
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Scan: ScanConfig{
			BufferSize:  scanner.DefaultBufferSize,
			Concurrency: scanner.DefaultConcurrency,
			Exclude:     []string{".git"},
		},
	}
}

// Loads configuration from a YAML file. Fields absent from the file keep
// their defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("log_level", c.LogLevel, fmt.Errorf("must be one of debug, info, warn, error"))
	}

	if c.Scan.Format != "" && !c.Scan.Decompress {
		return errors.NewValidationError("format", c.Scan.Format, fmt.Errorf("requires decompress to be enabled"))
	}

	return scanner.Validate(c.ScannerOptions())
}

// ScannerOptions converts the scan section into scanner options.
func (c *Config) ScannerOptions() *domain.ScannerOptions {
	opts := scanner.DefaultOptions()
	if c.Scan.BufferSize != 0 {
		opts.BufferSize = c.Scan.BufferSize
	}
	if c.Scan.Concurrency != 0 {
		opts.Concurrency = c.Scan.Concurrency
	}
	opts.ReadRateLimit = c.Scan.ReadRateLimit
	opts.Timeout = c.Scan.Timeout
	opts.Recursive = c.Scan.Recursive
	opts.ExcludeDirs = c.Scan.Exclude
	opts.CompressionOptions.Enable = c.Scan.Decompress
	opts.CompressionOptions.Format = domain.CompressionFormat(c.Scan.Format)

	if opts.CompressionOptions.Format == compression.None {
		opts.CompressionOptions.Format = ""
	}
	return opts
}
