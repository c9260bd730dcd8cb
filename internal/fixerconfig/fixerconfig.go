// Package fixerconfig models the configuration object handed to
// php-cs-fixer: the sorted rule set plus the engine-level settings that
// travel with it.
package fixerconfig

import (
	"github.com/donaldgifford/fixerconf/internal/ruleset"
	"github.com/donaldgifford/fixerconf/internal/version"
)

// Defaults applied by New.
const (
	DefaultIndent     = "    "
	DefaultLineEnding = "\n"
)

// Config is the fully resolved fixer configuration.
type Config struct {
	PHPVersion   version.Tag
	Rules        ruleset.Sorted
	RiskyAllowed bool
	Indent       string
	LineEnding   string
	Finder       Finder
	CacheFile    string
}

// Option customizes a Config built by New.
type Option func(*Config)

// WithIndent sets the indentation string.
func WithIndent(indent string) Option {
	return func(c *Config) { c.Indent = indent }
}

// WithLineEnding sets the line ending.
func WithLineEnding(eol string) Option {
	return func(c *Config) { c.LineEnding = eol }
}

// WithFinder sets the file finder.
func WithFinder(f Finder) Option {
	return func(c *Config) { c.Finder = f }
}

// WithCacheFile sets the fixer cache file path.
func WithCacheFile(path string) Option {
	return func(c *Config) { c.CacheFile = path }
}

// New materializes c into a fixer configuration.
func New(c ruleset.Configurator, opts ...Option) Config {
	rules, risky := c.Materialize()
	cfg := Config{
		PHPVersion:   c.Version(),
		Rules:        rules,
		RiskyAllowed: risky,
		Indent:       DefaultIndent,
		LineEnding:   DefaultLineEnding,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// HeaderRule returns the header_comment rule that stamps text at the top of
// every file. An empty text yields no rules.
func HeaderRule(text string) ruleset.Rules {
	if text == "" {
		return nil
	}
	return ruleset.Rules{
		"header_comment": ruleset.With(map[string]any{"header": text}),
	}
}
