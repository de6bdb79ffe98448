// Package config provides reading and writing of lned configuration.
// Supports both global (~/.lned/config.yaml) and local (.lned/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

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
	// ScopeGlobal is user-wide config in ~/.lned/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .lned/config.yaml
	ScopeLocal
)

// Display holds options for how the buffer is shown.
type Display struct {
	Prefix  *string `yaml:"prefix,omitempty"`
	Numbers *bool   `yaml:"numbers,omitempty"`
	Colour  *bool   `yaml:"colour,omitempty"`
	Diff    *bool   `yaml:"diff,omitempty"`
}

// History holds undo/redo options.
type History struct {
	Limit *int `yaml:"limit,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxLineLength *int `yaml:"max_line_length,omitempty"`
}

// Log holds audit log options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultPrefix        = "   > "
	DefaultHistoryLimit  = 0                // unlimited
	DefaultMaxLineLength = 10 * 1024 * 1024 // 10 MB
)

// Validation bounds for configuration values.
const (
	MinHistoryLimit  = 0
	MaxHistoryLimit  = 1_000_000
	MinMaxLineLength = 1
	MaxMaxLineLength = 1024 * 1024 * 1024 // 1 GB
	MaxPrefixLength  = 64
)

// Config contains configuration for lned.
type Config struct {
	Display Display `yaml:"display,omitempty"`
	History History `yaml:"history,omitempty"`
	Limits  Limits  `yaml:"limits,omitempty"`
	Log     Log     `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.History.Limit != nil {
		v := *c.History.Limit
		if v < MinHistoryLimit || v > MaxHistoryLimit {
			return fmt.Errorf("%w: history.limit must be between %d and %d, got %d",
				ErrInvalidValue, MinHistoryLimit, MaxHistoryLimit, v)
		}
	}
	if c.Limits.MaxLineLength != nil {
		v := *c.Limits.MaxLineLength
		if v < MinMaxLineLength || v > MaxMaxLineLength {
			return fmt.Errorf("%w: max_line_length must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength, v)
		}
	}
	if c.Display.Prefix != nil && len(*c.Display.Prefix) > MaxPrefixLength {
		return fmt.Errorf("%w: display.prefix must be at most %d bytes",
			ErrInvalidValue, MaxPrefixLength)
	}
	return nil
}

// Prefix returns the prefix printed before each displayed line.
func (c *Config) Prefix() string {
	if c.Display.Prefix == nil {
		return DefaultPrefix
	}
	return *c.Display.Prefix
}

// Numbers returns whether displayed lines are numbered (defaults to false).
func (c *Config) Numbers() bool {
	return boolOr(c.Display.Numbers, false)
}

// Colour returns whether diffs are colourised on a terminal (defaults to true).
func (c *Config) Colour() bool {
	return boolOr(c.Display.Colour, true)
}

// ShowDiff returns whether undo/redo print a diff (defaults to false).
func (c *Config) ShowDiff() bool {
	return boolOr(c.Display.Diff, false)
}

// HistoryLimit returns the maximum undo depth (defaults to 0, unlimited).
func (c *Config) HistoryLimit() int {
	if c.History.Limit == nil {
		return DefaultHistoryLimit
	}
	return *c.History.Limit
}

// MaxLineLength returns the maximum line length accepted on load (defaults to 10 MB).
// Files with very long lines (minified JS, base64 blobs) need a larger value.
func (c *Config) MaxLineLength() int {
	if c.Limits.MaxLineLength == nil {
		return DefaultMaxLineLength
	}
	return *c.Limits.MaxLineLength
}

// LogEnabled returns whether the audit log is written (defaults to true).
func (c *Config) LogEnabled() bool {
	return boolOr(c.Log.Enabled, true)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".lned", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.lned/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lned", "config.yaml")
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
