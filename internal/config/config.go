// Package config provides reading and writing of irisk configuration.
// Supports both global (~/.irisk/config.yaml) and local (.irisk/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever the config was read from.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/irisk/internal/check"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.irisk/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .irisk/config.yaml
	ScopeLocal
)

// Author identifies who ran a command in the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Limits holds buffer size options.
type Limits struct {
	ErrorBuffer *int `yaml:"error_buffer,omitempty"`
}

// Checks holds validation policy options.
type Checks struct {
	RejectNaN *bool `yaml:"reject_nan,omitempty"`
}

// DefaultErrorBuffer is the size of the error buffer the ClinRisk
// validation routines allocate.
const DefaultErrorBuffer = 1024

// Validation bounds for configuration values.
const (
	MinErrorBuffer = 1
	MaxErrorBuffer = 64 * 1024
)

// Config contains configuration for irisk.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`
	Checks Checks `yaml:"checks,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.ErrorBuffer != nil {
		v := *c.Limits.ErrorBuffer
		if !check.IntInRange(v, MinErrorBuffer, MaxErrorBuffer) {
			return fmt.Errorf("%w: error_buffer must be between %d and %d, got %d",
				ErrInvalidValue, MinErrorBuffer, MaxErrorBuffer, v)
		}
	}
	return nil
}

// ErrorBuffer returns the validation error buffer size in bytes
// (defaults to 1024).
func (c *Config) ErrorBuffer() int {
	if c.Limits.ErrorBuffer == nil {
		return DefaultErrorBuffer
	}
	return *c.Limits.ErrorBuffer
}

// RejectNaN returns whether NaN fails double range checks (defaults to false).
func (c *Config) RejectNaN() bool {
	if c.Checks.RejectNaN == nil {
		return false
	}
	return *c.Checks.RejectNaN
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(".irisk", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.irisk/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".irisk", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
