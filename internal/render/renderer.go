// Package render writes fixer configurations and refactor profiles in the
// formats the external tools read.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/donaldgifford/fixerconf/internal/fixerconfig"
	"github.com/donaldgifford/fixerconf/internal/refactor"
)

// ErrUnknownFormat is returned by Lookup for an unregistered format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer serializes configurations in one output format.
type Renderer interface {
	// Name returns the format name used in config files and flags (e.g., "php").
	Name() string

	// Extension returns the conventional file extension, including the dot.
	Extension() string

	// Fixer writes a php-cs-fixer configuration.
	Fixer(w io.Writer, cfg fixerconfig.Config) error

	// Refactor writes a rector profile.
	Refactor(w io.Writer, p refactor.Profile) error
}

// Format enumerates the built-in renderers for command-line flags.
type Format uint8

const (
	// FormatPHP renders loadable PHP config files.
	FormatPHP Format = iota
	// FormatJSON renders JSON documents.
	FormatJSON
	// FormatYAML renders YAML documents.
	FormatYAML
)

var formatNames = map[Format]string{
	FormatPHP:  "php",
	FormatJSON: "json",
	FormatYAML: "yaml",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatIDs maps each format to its command-line spellings.
func FormatIDs() map[Format][]string {
	return map[Format][]string{
		FormatPHP:  {"php"},
		FormatJSON: {"json"},
		FormatYAML: {"yaml", "yml"},
	}
}
