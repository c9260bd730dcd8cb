package ruleset

import (
	"bytes"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// Rules maps rule names to their configuration.
type Rules map[string]Value

// Clone returns a deep copy of r.
func (r Rules) Clone() Rules {
	out := make(Rules, len(r))
	for name, v := range r {
		out[name] = v.clone()
	}
	return out
}

// merge unions layers into a new map. On a key collision the later layer
// wins.
func merge(layers ...Rules) Rules {
	size := 0
	for _, l := range layers {
		size += len(l)
	}
	out := make(Rules, size)
	for _, l := range layers {
		for name, v := range l {
			out[name] = v.clone()
		}
	}
	return out
}

// without returns a copy of r minus every key present in any of drop.
// Membership is by key only; values are not compared.
func without(r Rules, drop ...Rules) Rules {
	out := make(Rules, len(r))
	for name, v := range r {
		if inAny(name, drop) {
			continue
		}
		out[name] = v.clone()
	}
	return out
}

func inAny(name string, tables []Rules) bool {
	for _, t := range tables {
		if _, ok := t[name]; ok {
			return true
		}
	}
	return false
}

// Entry is one rule in a Sorted set.
type Entry struct {
	Name  string
	Value Value
}

// Sorted is a rule set ordered by ascending rule name.
type Sorted []Entry

// Sort returns r as a Sorted set. Names are compared byte-wise, which is
// the order php-cs-fixer's own ksort produces for rule names.
func Sort(r Rules) Sorted {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Sorted, 0, len(names))
	for _, name := range names {
		out = append(out, Entry{Name: name, Value: r[name].clone()})
	}
	return out
}

// Len returns the number of rules.
func (s Sorted) Len() int { return len(s) }

// Names returns the rule names in order.
func (s Sorted) Names() []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.Name
	}
	return out
}

// Get looks up a rule by name.
func (s Sorted) Get(name string) (Value, bool) {
	i, found := slices.BinarySearchFunc(s, name, func(e Entry, n string) int {
		switch {
		case e.Name < n:
			return -1
		case e.Name > n:
			return 1
		}
		return 0
	})
	if !found {
		return Value{}, false
	}
	return s[i].Value, true
}

// Map returns the rules as an unordered map.
func (s Sorted) Map() Rules {
	out := make(Rules, len(s))
	for _, e := range s {
		out[e.Name] = e.Value.clone()
	}
	return out
}

// MarshalJSON writes the rules as a JSON object in sorted key order.
func (s Sorted) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := marshalJSON(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the rules as a mapping node in sorted key order.
func (s Sorted) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range s {
		var val yaml.Node
		if err := val.Encode(e.Value.Interface()); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			&val,
		)
	}
	return node, nil
}
