package lexgen

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v2"
)

// RuleSpec is the textual, serializable form of a Rule: everything except
// the action, which a manifest can only name, not implement.
type RuleSpec struct {
	Name    string   `toml:"name" yaml:"name"`
	Pattern string   `toml:"pattern" yaml:"pattern"`
	Action  string   `toml:"action" yaml:"action"`
	States  []string `toml:"states" yaml:"states"`
}

// StateSpec is the textual form of a StateDescriptor.
type StateSpec struct {
	Name          string `toml:"name" yaml:"name"`
	ID            int    `toml:"id" yaml:"id"`
	Exclusive     bool   `toml:"exclusive" yaml:"exclusive"`
	EOFAction     string `toml:"eof_action" yaml:"eof_action"`
	NoMatchAction string `toml:"no_match_action" yaml:"no_match_action"`
}

// Manifest is a rule catalog and state table in a form that can be loaded
// from TOML or YAML, then bound to real Actions through a registry to
// produce a Config. A driver can ship its grammar as data instead of Go
// source and recompile the lexer without a rebuild.
type Manifest struct {
	States []StateSpec `toml:"state" yaml:"states"`
	Rules  []RuleSpec  `toml:"rule" yaml:"rules"`
}

// LoadManifestTOML reads and parses a Manifest from a TOML file.
func LoadManifestTOML(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &ConfigError{Msg: fmt.Sprintf("%s: %s", path, err)}
	}
	return &m, nil
}

// LoadManifestYAML reads and parses a Manifest from a YAML file.
func LoadManifestYAML(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ConfigError{Msg: fmt.Sprintf("%s: %s", path, err)}
	}
	return &m, nil
}

// ActionRegistry resolves the names a Manifest refers to into real Actions,
// so a data-driven rule catalog can still call into Go code.
type ActionRegistry[T any] map[string]Action[T]

// BuildManifest resolves m against registry and the lexer-level defaults
// into a Config. State names used in a rule's States list are resolved
// against the states declared in m.States, plus the built-in "initial" (also
// spelled "root") and "all". It is a function rather than a method on *Manifest because Go
// methods cannot carry their own type parameter.
func BuildManifest[T any](
	m *Manifest,
	registry ActionRegistry[T],
	defaultEOF, defaultNoMatch Action[T],
) (Config[T], error) {
	byName := map[string]StateID{
		"initial": InitialState,
		"root":    InitialState,
		"all":     AllStates,
	}
	states := make([]StateDescriptor[T], 0, len(m.States))
	for _, s := range m.States {
		id := StateID(s.ID)
		if _, dup := byName[s.Name]; dup {
			return Config[T]{}, &ConfigError{Msg: fmt.Sprintf("state %q: name already in use", s.Name)}
		}
		byName[s.Name] = id
		eof, err := resolveAction(registry, s.EOFAction)
		if err != nil {
			return Config[T]{}, err
		}
		noMatch, err := resolveAction(registry, s.NoMatchAction)
		if err != nil {
			return Config[T]{}, err
		}
		states = append(states, StateDescriptor[T]{
			ID:            id,
			Exclusive:     s.Exclusive,
			EOFAction:     eof,
			NoMatchAction: noMatch,
		})
	}

	rules := make([]Rule[T], 0, len(m.Rules))
	for _, rs := range m.Rules {
		action, err := resolveAction(registry, rs.Action)
		if err != nil {
			return Config[T]{}, err
		}
		ids := make([]StateID, 0, len(rs.States))
		for _, name := range rs.States {
			id, ok := byName[name]
			if !ok {
				return Config[T]{}, &ConfigError{Msg: fmt.Sprintf("rule %q: undeclared state %q", rs.Name, name)}
			}
			ids = append(ids, id)
		}
		rules = append(rules, Rule[T]{
			Name:    rs.Name,
			Pattern: rs.Pattern,
			Action:  action,
			States:  ids,
		})
	}

	return Config[T]{
		Rules:                rules,
		States:               states,
		DefaultEOFAction:     defaultEOF,
		DefaultNoMatchAction: defaultNoMatch,
	}, nil
}

func resolveAction[T any](registry ActionRegistry[T], name string) (Action[T], error) {
	if name == "" {
		return nil, nil
	}
	action, ok := registry[name]
	if !ok {
		return nil, &ConfigError{Msg: fmt.Sprintf("undeclared action %q", name)}
	}
	return action, nil
}
