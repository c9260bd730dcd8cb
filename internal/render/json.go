package render

import (
	"encoding/json"
	"io"

	"github.com/donaldgifford/fixerconf/internal/fixerconfig"
	"github.com/donaldgifford/fixerconf/internal/refactor"
)

// JSON renders configurations as indented JSON documents.
type JSON struct{}

// Name returns "json".
func (*JSON) Name() string { return "json" }

// Extension returns ".json".
func (*JSON) Extension() string { return ".json" }

// Fixer writes the fixer configuration as JSON, rules in sorted order.
func (*JSON) Fixer(w io.Writer, cfg fixerconfig.Config) error {
	return encodeJSON(w, newFixerDocument(cfg))
}

// Refactor writes the refactor profile as JSON.
func (*JSON) Refactor(w io.Writer, p refactor.Profile) error {
	return encodeJSON(w, newRefactorDocument(p))
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
