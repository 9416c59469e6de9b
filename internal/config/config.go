// Package config loads the YAML run configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/refgen/internal/types"
)

const (
	// DefaultFile is the configuration file consulted when no path is given.
	DefaultFile = "refgen.yaml"
	// DefaultReferenceDir is the reference root used when unset.
	DefaultReferenceDir = "reference"
)

// ConfigError reports an invalid run configuration.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Config describes one generation run.
type Config struct {
	ReferenceDir string              `yaml:"reference_dir"` // output root for pages and SUMMARY.md
	Packages     []types.PackageSpec `yaml:"packages"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{ReferenceDir: DefaultReferenceDir}
}

// Load reads the configuration file at path. A missing file yields the
// defaults without error, so flag-only invocations work from a bare
// checkout; a malformed file is always an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %s - %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %s - %w", path, err)
	}
	if cfg.ReferenceDir == "" {
		cfg.ReferenceDir = DefaultReferenceDir
	}
	return cfg, nil
}

// Validate checks the loaded configuration before a run.
func (c *Config) Validate() error {
	if c.ReferenceDir == "" {
		return &ConfigError{Message: "reference_dir must not be empty"}
	}
	for i, pkg := range c.Packages {
		if pkg.Name == "" {
			return &ConfigError{Message: fmt.Sprintf("packages[%d]: name is required", i)}
		}
	}
	return nil
}
