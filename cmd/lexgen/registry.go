package main

import (
	"os"

	"github.com/go-lexgen/lexgen"
)

// buildRegistry resolves every action name a manifest mentions into a
// lexgen.Action[string]. Two names are special-cased ("skip" discards the
// match, "echo" prints it and discards it); every other name is treated as
// the literal token value to return, so simple manifests need not wire up
// an action per rule in Go code at all.
func buildRegistry(m *lexgen.Manifest) lexgen.ActionRegistry[string] {
	registry := lexgen.ActionRegistry[string]{
		"skip": lexgen.VoidAction(func(*lexgen.Lexer[string], string, []string) {}),
		"echo": lexgen.Echo[string](os.Stdout),
	}
	addLiteral := func(name string) {
		if name == "" {
			return
		}
		if _, ok := registry[name]; !ok {
			registry[name] = lexgen.ReturnConstant(name)
		}
	}
	for _, r := range m.Rules {
		addLiteral(r.Action)
	}
	for _, s := range m.States {
		addLiteral(s.EOFAction)
		addLiteral(s.NoMatchAction)
	}
	return registry
}

func loadManifest(path string) (*lexgen.Manifest, error) {
	if hasSuffix(path, ".yaml") || hasSuffix(path, ".yml") {
		return lexgen.LoadManifestYAML(path)
	}
	return lexgen.LoadManifestTOML(path)
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
