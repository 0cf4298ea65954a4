// Command lexgen-validate lints a rule-catalog manifest: every pattern must
// compile, every state name a rule refers to must resolve, and every
// action name other than the built-in "skip" and "echo" must be declared
// by --action.
package main

import (
	"fmt"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/go-lexgen/lexgen"
)

var (
	app        = kingpin.New("lexgen-validate", "Validate a lexgen rule-catalog manifest.")
	manifest   = app.Arg("manifest", "TOML or YAML rule-catalog manifest.").Required().ExistingFile()
	knownNames = app.Flag("action", "Declare an action name the manifest is allowed to reference (repeatable).").Strings()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := validate(*manifest, *knownNames); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

// validate builds a throwaway Config[struct{}] from m: every action name is
// bound to a no-op, so the only failures that can surface are the ones the
// manifest itself is responsible for (bad patterns, dangling state names,
// undeclared actions).
func validate(path string, declared []string) error {
	var m *lexgen.Manifest
	var err error
	if hasSuffix(path, ".yaml") || hasSuffix(path, ".yml") {
		m, err = lexgen.LoadManifestYAML(path)
	} else {
		m, err = lexgen.LoadManifestTOML(path)
	}
	if err != nil {
		return err
	}

	noop := lexgen.VoidAction(func(*lexgen.Lexer[struct{}], string, []string) {})
	registry := lexgen.ActionRegistry[struct{}]{}
	for _, name := range declared {
		registry[name] = noop
	}
	registry["skip"] = noop
	registry["echo"] = noop

	cfg, err := lexgen.BuildManifest(m, registry, noop, noop)
	if err != nil {
		return err
	}
	_, err = lexgen.New(cfg)
	return err
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
