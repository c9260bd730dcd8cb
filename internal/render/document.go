package render

import (
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/fixerconf/internal/fixerconfig"
	"github.com/donaldgifford/fixerconf/internal/refactor"
	"github.com/donaldgifford/fixerconf/internal/ruleset"
)

// fixerDocument is the shape shared by the JSON and YAML fixer outputs.
type fixerDocument struct {
	PHPVersion   string              `json:"php_version" yaml:"php_version"`
	RiskyAllowed bool                `json:"risky_allowed" yaml:"risky_allowed"`
	Indent       string              `json:"indent" yaml:"indent"`
	LineEnding   quotedString        `json:"line_ending" yaml:"line_ending"`
	CacheFile    string              `json:"cache_file,omitempty" yaml:"cache_file,omitempty"`
	Finder       *fixerconfig.Finder `json:"finder,omitempty" yaml:"finder,omitempty"`
	Rules        ruleset.Sorted      `json:"rules" yaml:"rules"`
}

func newFixerDocument(cfg fixerconfig.Config) fixerDocument {
	doc := fixerDocument{
		PHPVersion:   cfg.PHPVersion.String(),
		RiskyAllowed: cfg.RiskyAllowed,
		Indent:       cfg.Indent,
		LineEnding:   quotedString(cfg.LineEnding),
		CacheFile:    cfg.CacheFile,
		Rules:        cfg.Rules,
	}
	if doc.Rules == nil {
		doc.Rules = ruleset.Sorted{}
	}
	if !cfg.Finder.Empty() {
		f := cfg.Finder
		doc.Finder = &f
	}
	return doc
}

// quotedString is always written as a double-quoted YAML scalar. yaml.v3
// would otherwise emit a lone "\n" as an empty literal block.
type quotedString string

func (s quotedString) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: string(s)}, nil
}

// refactorDocument is the shape shared by the JSON and YAML refactor outputs.
type refactorDocument struct {
	PHPVersion string `json:"php_version" yaml:"php_version"`
	refactor.Profile `yaml:",inline"`
}

func newRefactorDocument(p refactor.Profile) refactorDocument {
	return refactorDocument{PHPVersion: p.PHPVersion.String(), Profile: p}
}
