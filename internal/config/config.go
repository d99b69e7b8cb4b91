// Package config provides reading and writing of cachedir configuration.
// Supports both global (~/.cachedir/config.yaml) and local (.cachedir/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// Configuration only shapes CLI output and audit logging. The tag package
// never reads it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

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
	// ScopeGlobal is user-wide config in ~/.cachedir/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .cachedir/config.yaml
	ScopeLocal
)

// String returns "global" or "local".
func (s Scope) String() string {
	if s == ScopeLocal {
		return "local"
	}
	return "global"
}

// Output formats accepted by output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// Author represents who is recorded in the audit log.
type Author struct {
	Name string `yaml:"name,omitempty"`
}

// Output holds output presentation options.
type Output struct {
	Format string `yaml:"format,omitempty"`
}

// Log holds audit log options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Config contains configuration for cachedir.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Output Output `yaml:"output,omitempty"`
	Log    Log    `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are acceptable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Output.Format != "" && !slices.Contains(ValidFormats, c.Output.Format) {
		return fmt.Errorf("%w: output.format must be one of %v, got %q",
			ErrInvalidValue, ValidFormats, c.Output.Format)
	}
	return nil
}

// OutputFormat returns the configured output format (defaults to text).
func (c *Config) OutputFormat() string {
	if c.Output.Format == "" {
		return FormatText
	}
	return c.Output.Format
}

// LogEnabled returns whether audit logging is enabled (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// Dir is the directory name holding cachedir files.
const Dir = ".cachedir"

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.cachedir/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
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
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// pathForScope returns the filesystem path for a given scope.
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
