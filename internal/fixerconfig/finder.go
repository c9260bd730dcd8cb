package fixerconfig

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Finder selects the files php-cs-fixer runs on. Paths are relative to the
// directory holding the generated config.
type Finder struct {
	In      []string `json:"in,omitempty" yaml:"in,omitempty"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Append  []string `json:"append,omitempty" yaml:"append,omitempty"`
}

// Empty reports whether the finder selects nothing.
func (f Finder) Empty() bool {
	return len(f.In) == 0 && len(f.Append) == 0
}

// Expand resolves glob patterns in Append against fsys and returns a copy
// whose Append list holds concrete, sorted, de-duplicated paths. A pattern
// that matches nothing is an error, so a typo never silently drops files.
func (f Finder) Expand(fsys fs.FS) (Finder, error) {
	out := Finder{
		In:      slices.Clone(f.In),
		Exclude: slices.Clone(f.Exclude),
	}

	seen := make(map[string]bool)
	for _, pattern := range f.Append {
		if !doublestar.ValidatePattern(pattern) {
			return Finder{}, fmt.Errorf("finder append: invalid pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return Finder{}, fmt.Errorf("finder append %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return Finder{}, fmt.Errorf("finder append: no files match %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out.Append = append(out.Append, m)
			}
		}
	}
	slices.Sort(out.Append)
	return out, nil
}
