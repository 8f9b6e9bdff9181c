// Package criteria parses declarative multi-key ordering criteria, as found
// in configuration files or request parameters, and resolves them against a
// registry of named strategies into a single composite strategy.
//
// A criteria value is an ordered list of keys with optional directions. In
// text form it looks like:
//
//	year desc, name
//
// and in YAML either form is accepted per key:
//
//	order:
//	  - year desc
//	  - key: name
//	    desc: false
package criteria

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-ordering/ordering"
	"gopkg.in/yaml.v3"
)

// ErrEmptyCriteria is returned when criteria with no keys are parsed or
// resolved; an ordering cannot be guessed.
var ErrEmptyCriteria = errors.New("criteria have no keys")

// Key names a registered strategy and the direction to apply it in.
type Key struct {
	Name       string `yaml:"key"`
	Descending bool   `yaml:"desc"`
}

// Criteria is a list of keys in priority order. Keys after the first only
// break ties in the ones before them.
type Criteria []Key

// Parse reads criteria from their text form: comma-separated keys, each
// optionally followed by "asc" or "desc". Direction defaults to ascending.
func Parse(text string) (Criteria, error) {
	var criteria Criteria

	for part := range strings.SplitSeq(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, err := parseKey(part)
		if err != nil {
			return nil, err
		}

		criteria = append(criteria, key)
	}

	if len(criteria) == 0 {
		return nil, ErrEmptyCriteria
	}

	return criteria, nil
}

func parseKey(text string) (Key, error) {
	fields := strings.Fields(text)

	switch len(fields) {
	case 1:
		return Key{Name: fields[0]}, nil
	case 2:
		switch strings.ToLower(fields[1]) {
		case "asc":
			return Key{Name: fields[0]}, nil
		case "desc":
			return Key{Name: fields[0], Descending: true}, nil
		default:
			return Key{}, fmt.Errorf("unknown direction %q in criteria key %q", fields[1], text)
		}
	default:
		return Key{}, fmt.Errorf("malformed criteria key %q", text)
	}
}

// UnmarshalYAML accepts a key either as a scalar in the text form
// ("year desc") or as a mapping with "key" and "desc" fields.
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return err
		}

		key, err := parseKey(strings.TrimSpace(raw))
		if err != nil {
			return err
		}

		*k = key

		return nil
	case yaml.MappingNode:
		// Decode via a local alias to avoid recursing into this method.
		type plain Key

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		if p.Name == "" {
			return errors.New("criteria key mapping is missing 'key'")
		}

		*k = Key(p)

		return nil
	default:
		return fmt.Errorf("criteria key must be a scalar or mapping, got YAML node kind %d", node.Kind)
	}
}

// Resolve looks every key up in the registry and composes the results into
// one strategy, applying keys in priority order and reversing the ones
// marked descending. Resolution fails if the criteria are empty or any key
// is not registered.
func Resolve[T any](c Criteria, reg *ordering.Registry[T]) (ordering.Strategy[T], error) {
	if len(c) == 0 {
		return nil, ErrEmptyCriteria
	}

	var combined ordering.Strategy[T]

	for _, key := range c {
		s, err := reg.Lookup(key.Name)
		if err != nil {
			return nil, fmt.Errorf("resolve criteria: %w", err)
		}

		if key.Descending {
			s = s.Reversed()
		}

		if combined == nil {
			combined = s
		} else {
			combined = combined.Then(s)
		}
	}

	return combined, nil
}
