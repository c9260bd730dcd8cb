// Package version defines the closed set of PHP versions fixerconf can target.
package version

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when a string does not name a supported PHP version.
var ErrInvalid = errors.New("invalid php version")

// Tag identifies a supported target PHP version. The zero value is not a
// valid tag; only the constants below are.
type Tag uint8

const (
	// PHP72 targets PHP 7.2.
	PHP72 Tag = iota + 1
	// PHP73 targets PHP 7.3.
	PHP73
	// PHP74 targets PHP 7.4.
	PHP74
	// PHP80 targets PHP 8.0.
	PHP80
	// PHP81 targets PHP 8.1.
	PHP81
)

var names = map[Tag]string{
	PHP72: "7.2",
	PHP73: "7.3",
	PHP74: "7.4",
	PHP80: "8.0",
	PHP81: "8.1",
}

// All returns every supported tag in ascending order.
func All() []Tag {
	return []Tag{PHP72, PHP73, PHP74, PHP80, PHP81}
}

// Parse returns the tag named by s, e.g. "8.0".
func Parse(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	for _, t := range All() {
		if names[t] == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (supported: %s)", ErrInvalid, s, supported())
}

// Valid reports whether t is one of the supported tags.
func (t Tag) Valid() bool {
	_, ok := names[t]
	return ok
}

// Equal reports whether t and other name the same version.
func (t Tag) Equal(other Tag) bool {
	return t == other
}

// Before reports whether t is an older version than other.
func (t Tag) Before(other Tag) bool {
	return t < other
}

func (t Tag) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, t)
	}
	return []byte(names[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// FlagIDs maps each tag to its command-line spelling.
func FlagIDs() map[Tag][]string {
	ids := make(map[Tag][]string, len(names))
	for t, name := range names {
		ids[t] = []string{name}
	}
	return ids
}

func supported() string {
	out := make([]string, 0, len(names))
	for _, t := range All() {
		out = append(out, names[t])
	}
	return strings.Join(out, ", ")
}
