package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/fixerconf/internal/fixerconfig"
	"github.com/donaldgifford/fixerconf/internal/refactor"
)

// YAML renders configurations as YAML documents.
type YAML struct{}

// Name returns "yaml".
func (*YAML) Name() string { return "yaml" }

// Extension returns ".yaml".
func (*YAML) Extension() string { return ".yaml" }

// Fixer writes the fixer configuration as YAML, rules in sorted order.
func (*YAML) Fixer(w io.Writer, cfg fixerconfig.Config) error {
	return encodeYAML(w, newFixerDocument(cfg))
}

// Refactor writes the refactor profile as YAML.
func (*YAML) Refactor(w io.Writer, p refactor.Profile) error {
	return encodeYAML(w, newRefactorDocument(p))
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
