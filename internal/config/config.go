// Package config defines the configuration types and defaults for fixerconf.
package config

import (
	"fmt"

	"github.com/donaldgifford/fixerconf/internal/fixerconfig"
	"github.com/donaldgifford/fixerconf/internal/refactor"
	"github.com/donaldgifford/fixerconf/internal/ruleset"
	"github.com/donaldgifford/fixerconf/internal/version"
)

// Config is the top-level configuration.
type Config struct {
	PHPVersion version.Tag        `yaml:"php_version"`
	Risky      bool               `yaml:"risky"`
	Indent     string             `yaml:"indent"`
	LineEnding string             `yaml:"line_ending"`
	Header     string             `yaml:"header"`
	Rules      ruleset.Rules      `yaml:"rules"`
	Finder     fixerconfig.Finder `yaml:"finder"`
	CacheFile  string             `yaml:"cache_file"`
	Output     OutputConfig       `yaml:"output"`
	Refactor   RefactorConfig     `yaml:"refactor"`
	Log        LogConfig          `yaml:"log"`
}

// OutputConfig says where and how a generated file is written.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// RefactorConfig holds rector profile settings.
type RefactorConfig struct {
	Paths  []string     `yaml:"paths"`
	Skip   []string     `yaml:"skip"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		PHPVersion: version.PHP80,
		Risky:      true,
		Indent:     fixerconfig.DefaultIndent,
		LineEnding: fixerconfig.DefaultLineEnding,
		Finder: fixerconfig.Finder{
			In: []string{"."},
		},
		Output: OutputConfig{
			Path:   ".php-cs-fixer.dist.php",
			Format: "php",
		},
		Refactor: RefactorConfig{
			Output: OutputConfig{
				Path:   "rector.php",
				Format: "php",
			},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Configurator builds the rule set described by c. Rules from the config
// file are added last so they override built-in and risky rules alike.
func (c *Config) Configurator() (ruleset.Configurator, error) {
	rs, err := ruleset.FromVersion(c.PHPVersion)
	if err != nil {
		return ruleset.Configurator{}, fmt.Errorf("building rule set: %w", err)
	}

	if c.Risky {
		rs, err = rs.WithRiskyRulesEnabled()
		if err != nil {
			return ruleset.Configurator{}, fmt.Errorf("enabling risky rules: %w", err)
		}
	} else {
		rs = rs.WithRiskyRulesDisabled()
	}

	return rs.
		WithAddedRules(fixerconfig.HeaderRule(c.Header)).
		WithAddedRules(c.Rules), nil
}

// RefactorProfile builds the rector profile described by c.
func (c *Config) RefactorProfile() (refactor.Profile, error) {
	p, err := refactor.ForVersion(c.PHPVersion)
	if err != nil {
		return refactor.Profile{}, fmt.Errorf("building refactor profile: %w", err)
	}
	return p.WithPaths(c.Refactor.Paths...).WithSkipped(c.Refactor.Skip...), nil
}
