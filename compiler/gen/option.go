package gen

import (
	"errors"
	"log/slog"
)

// DefaultRoot is the conventional Magento code root.
const DefaultRoot = "app/code"

// Config holds the settings shared by rendering and writing.
type Config struct {
	// Root is the directory vendor/module paths are joined onto.
	Root string
	// DryRun reports the artifact paths without touching disk.
	DryRun bool
	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// Log returns the configured logger or the process default.
func (c *Config) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Option configures code generation.
type Option func(*Config) error

// WithRoot sets the output root directory.
func WithRoot(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Root", nil, "root directory cannot be empty")
		}
		c.Root = dir
		return nil
	}
}

// WithDryRun toggles dry-run mode.
func WithDryRun(dryRun bool) Option {
	return func(c *Config) error {
		c.DryRun = dryRun
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config rooted at DefaultRoot with the given options.
// Every invalid option is reported, joined into one error.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Root: DefaultRoot}
	if err := c.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
