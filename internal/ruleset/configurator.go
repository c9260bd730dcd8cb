// Package ruleset assembles php-cs-fixer rule sets for a target PHP version.
//
// A Configurator is an immutable value: every With method returns a new
// instance holding a fully merged rule map and never touches the receiver.
// Instances are safe to share between goroutines.
package ruleset

import (
	"errors"
	"fmt"

	"github.com/donaldgifford/fixerconf/internal/version"
)

// ErrUnsupportedVersion is returned when a rule lookup is keyed by a tag
// outside the supported set.
var ErrUnsupportedVersion = errors.New("unsupported php version")

// Configurator holds a resolved rule set, the version it targets, and
// whether risky rules are allowed.
type Configurator struct {
	rules   Rules
	version version.Tag
	risky   bool
}

// FromVersion starts a rule set for tag from the base rules. The version's
// migration rules are merged over the base rules, so they win on collision.
// Risky rules start disabled.
func FromVersion(tag version.Tag) (Configurator, error) {
	layers, ok := migrationRules(tag)
	if !ok {
		return Configurator{}, fmt.Errorf("%w: %s", ErrUnsupportedVersion, tag)
	}
	return Configurator{
		rules:   merge(append([]Rules{baseRules()}, layers...)...),
		version: tag,
	}, nil
}

// WithAddedRules returns a copy with extra merged in. Entries in extra
// replace existing rules of the same name.
func (c Configurator) WithAddedRules(extra Rules) Configurator {
	return Configurator{
		rules:   merge(c.rules, extra),
		version: c.version,
		risky:   c.risky,
	}
}

// WithRiskyRulesEnabled returns a copy with the risky rules for the
// current version merged in and risky fixes allowed. Risky entries replace
// existing rules of the same name, so caller overrides of risky rules must
// be added afterwards.
func (c Configurator) WithRiskyRulesEnabled() (Configurator, error) {
	versionRisky, ok := riskyMigrationRules(c.version)
	if !ok {
		return Configurator{}, fmt.Errorf("%w: %s", ErrUnsupportedVersion, c.version)
	}
	return Configurator{
		rules:   merge(c.rules, riskyRules(), versionRisky),
		version: c.version,
		risky:   true,
	}, nil
}

// WithRiskyRulesDisabled returns a copy with risky fixes disallowed and
// every rule named in any risky table removed. The risky tables of all
// versions are subtracted, not only the current one, and removal is by
// name: a risky rule the caller set to a different value is removed too.
func (c Configurator) WithRiskyRulesDisabled() Configurator {
	return Configurator{
		rules:   without(c.rules, allRiskyTables()...),
		version: c.version,
		risky:   false,
	}
}

// Materialize returns the final rules sorted by name and whether risky
// fixes are allowed.
func (c Configurator) Materialize() (Sorted, bool) {
	return Sort(c.rules), c.risky
}

// Version returns the targeted PHP version.
func (c Configurator) Version() version.Tag { return c.version }

// RiskyEnabled reports whether risky fixes are allowed.
func (c Configurator) RiskyEnabled() bool { return c.risky }

// Rules returns a copy of the current rule map.
func (c Configurator) Rules() Rules { return c.rules.Clone() }
