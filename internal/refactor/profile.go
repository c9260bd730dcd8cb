// Package refactor builds the rector refactor profile that matches a fixer
// rule set: which rule sets to import for the target PHP version and which
// rectors to skip.
package refactor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/donaldgifford/fixerconf/internal/ruleset"
	"github.com/donaldgifford/fixerconf/internal/version"
)

// Profile is a resolved rector configuration.
type Profile struct {
	PHPVersion         version.Tag `json:"-" yaml:"-"`
	Paths              []string    `json:"paths" yaml:"paths"`
	Sets               []string    `json:"sets" yaml:"sets"`
	DowngradeSets      []string    `json:"downgrade_sets" yaml:"downgrade_sets"`
	Skip               []string    `json:"skip" yaml:"skip"`
	PHPVersionFeatures string      `json:"php_version_features" yaml:"php_version_features"`
	AutoImportNames    bool        `json:"auto_import_names" yaml:"auto_import_names"`
	ImportShortClasses bool        `json:"import_short_classes" yaml:"import_short_classes"`
	ImportDocBlocks    bool        `json:"import_doc_blocks" yaml:"import_doc_blocks"`
}

var qualitySets = []string{
	"CODING_STYLE",
	"CODE_QUALITY",
	"DEAD_CODE",
	"PRIVATIZATION",
	"PSR_4",
	"TYPE_DECLARATION",
	"EARLY_RETURN",
}

var defaultSkip = []string{
	`Rector\CodingStyle\Rector\FuncCall\CallUserFuncArrayToVariadicRector`,
	`Rector\Privatization\Rector\MethodCall\PrivatizeLocalGetterToPropertyRector`,
	`Rector\DeadCode\Rector\ClassMethod\RemoveUnusedPromotedPropertyRector`,
	`Rector\CodingStyle\Rector\ClassMethod\UnSpreadOperatorRector`,
}

// ForVersion returns the default profile for tag: the quality sets, the
// upgrade sets up to tag, and downgrade sets for every newer version so
// code written with newer syntax still runs on tag.
func ForVersion(tag version.Tag) (Profile, error) {
	if !tag.Valid() {
		return Profile{}, fmt.Errorf("%w: %s", ruleset.ErrUnsupportedVersion, tag)
	}

	sets := slices.Clone(qualitySets)
	sets = append(sets, "PHP_71")
	var downgrade []string
	for _, v := range version.All() {
		if v.Before(tag) || v.Equal(tag) {
			sets = append(sets, setName(v))
			continue
		}
		downgrade = append(downgrade, setName(v))
	}
	slices.Reverse(downgrade)

	return Profile{
		PHPVersion:         tag,
		Paths:              []string{"src"},
		Sets:               sets,
		DowngradeSets:      downgrade,
		Skip:               slices.Clone(defaultSkip),
		PHPVersionFeatures: setName(tag),
		AutoImportNames:    true,
		ImportShortClasses: false,
		ImportDocBlocks:    true,
	}, nil
}

// WithPaths returns a copy that processes paths instead of the defaults.
// An empty list keeps the current paths.
func (p Profile) WithPaths(paths ...string) Profile {
	if len(paths) == 0 {
		return p.clone()
	}
	out := p.clone()
	out.Paths = slices.Clone(paths)
	return out
}

// WithSkipped returns a copy that also skips the named rectors.
func (p Profile) WithSkipped(rectors ...string) Profile {
	out := p.clone()
	for _, r := range rectors {
		if !slices.Contains(out.Skip, r) {
			out.Skip = append(out.Skip, r)
		}
	}
	return out
}

func (p Profile) clone() Profile {
	p.Paths = slices.Clone(p.Paths)
	p.Sets = slices.Clone(p.Sets)
	p.DowngradeSets = slices.Clone(p.DowngradeSets)
	p.Skip = slices.Clone(p.Skip)
	return p
}

// setName returns the rector set constant for tag, e.g. PHP_80.
func setName(tag version.Tag) string {
	return "PHP_" + strings.ReplaceAll(tag.String(), ".", "")
}
