package ruleset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Value is the configuration of a single rule: either a plain on/off toggle
// or a set of options, which implies the rule is on.
type Value struct {
	enabled bool
	options map[string]any
}

// On returns a toggle that enables a rule.
func On() Value { return Value{enabled: true} }

// Off returns a toggle that disables a rule.
func Off() Value { return Value{} }

// With returns an enabled rule configured with opts. A nil or empty opts
// map yields an enabled toggle with an empty option set.
func With(opts map[string]any) Value {
	if opts == nil {
		opts = map[string]any{}
	}
	return Value{enabled: true, options: cloneMap(opts)}
}

// Enabled reports whether the rule is switched on.
func (v Value) Enabled() bool { return v.enabled }

// HasOptions reports whether the rule carries an option set rather than a
// bare toggle.
func (v Value) HasOptions() bool { return v.options != nil }

// Options returns a copy of the rule's options, or nil for a toggle.
func (v Value) Options() map[string]any {
	if v.options == nil {
		return nil
	}
	return cloneMap(v.options)
}

// Equal reports whether v and other configure a rule identically.
func (v Value) Equal(other Value) bool {
	if v.enabled != other.enabled || v.HasOptions() != other.HasOptions() {
		return false
	}
	return reflect.DeepEqual(v.options, other.options)
}

func (v Value) String() string {
	if v.options == nil {
		return fmt.Sprint(v.enabled)
	}
	b, err := marshalJSON(v.options)
	if err != nil {
		return fmt.Sprint(v.options)
	}
	return string(b)
}

func (v Value) clone() Value {
	if v.options == nil {
		return v
	}
	return Value{enabled: v.enabled, options: cloneMap(v.options)}
}

// Interface returns the value in its plain form: a bool or a map.
func (v Value) Interface() any {
	if v.options == nil {
		return v.enabled
	}
	return cloneMap(v.options)
}

// MarshalJSON encodes toggles as booleans and option sets as objects.
func (v Value) MarshalJSON() ([]byte, error) {
	return marshalJSON(v.Interface())
}

// UnmarshalJSON accepts a boolean or an object.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return v.fromInterface(raw)
}

// MarshalYAML encodes toggles as booleans and option sets as mappings.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// UnmarshalYAML accepts a boolean scalar or a mapping.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if err := v.fromInterface(raw); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

func (v *Value) fromInterface(raw any) error {
	switch x := raw.(type) {
	case bool:
		*v = Value{enabled: x}
	case map[string]any:
		*v = With(x)
	default:
		return fmt.Errorf("rule value must be a boolean or a mapping, got %T", raw)
	}
	return nil
}

// marshalJSON is json.Marshal without HTML escaping, so headers such as
// "Jane <jane@example.com>" stay readable.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return cloneMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneAny(e)
		}
		return out
	case []string:
		out := make([]string, len(x))
		copy(out, x)
		return out
	case map[string]string:
		return maps.Clone(x)
	default:
		return v
	}
}
