package lexgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const tomlManifest = `
[[state]]
name = "str"
id = 256
exclusive = true

[[rule]]
name = "quote"
pattern = "\""
action = "enter_string"
states = ["initial"]

[[rule]]
name = "body"
pattern = "[^\"]+"
action = "echo"
states = ["str"]
`

const yamlManifest = `
states:
  - name: str
    id: 256
    exclusive: true
rules:
  - name: quote
    pattern: '"'
    action: enter_string
    states: [initial]
  - name: body
    pattern: '[^"]+'
    action: echo
    states: [str]
`

func TestLoadManifestTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlManifest), 0o644))

	m, err := LoadManifestTOML(path)
	require.NoError(t, err)
	require.Len(t, m.States, 1)
	require.Equal(t, "str", m.States[0].Name)
	require.Equal(t, 256, m.States[0].ID)
	require.Len(t, m.Rules, 2)
	require.Equal(t, "enter_string", m.Rules[0].Action)
}

func TestLoadManifestYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlManifest), 0o644))

	m, err := LoadManifestYAML(path)
	require.NoError(t, err)
	require.Len(t, m.States, 1)
	require.Equal(t, StateID(256), StateID(m.States[0].ID))
	require.Len(t, m.Rules, 2)
	require.Equal(t, "body", m.Rules[1].Name)
}

func TestBuildManifestResolvesActionsAndStates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlManifest), 0o644))
	m, err := LoadManifestTOML(path)
	require.NoError(t, err)

	registry := ActionRegistry[string]{
		"enter_string": VoidAction(func(l *Lexer[string], _ string, _ []string) {}),
		"echo":         VoidAction(func(l *Lexer[string], _ string, _ []string) {}),
	}
	cfg, err := BuildManifest(m, registry, ReturnConstant[string]("EOF"), ReturnConstant[string]("NOMATCH"))
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 2)
	require.Len(t, cfg.States, 1)
	require.Equal(t, StateID(256), cfg.States[0].ID)
	require.Equal(t, []StateID{InitialState}, cfg.Rules[0].States)
	require.Equal(t, []StateID{StateID(256)}, cfg.Rules[1].States)

	lex, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, lex)
}

func TestBuildManifestUndeclaredActionFails(t *testing.T) {
	m := &Manifest{
		Rules: []RuleSpec{{Name: "r", Pattern: "x", Action: "missing", States: []string{"initial"}}},
	}
	_, err := BuildManifest(m, ActionRegistry[string]{}, ReturnConstant[string]("EOF"), ReturnConstant[string]("NOMATCH"))
	require.Error(t, err)
}

func TestBuildManifestUndeclaredStateFails(t *testing.T) {
	m := &Manifest{
		Rules: []RuleSpec{{Name: "r", Pattern: "x", States: []string{"nope"}}},
	}
	_, err := BuildManifest(m, ActionRegistry[string]{}, ReturnConstant[string]("EOF"), ReturnConstant[string]("NOMATCH"))
	require.Error(t, err)
}

func TestBuildManifestBuiltinStateAliases(t *testing.T) {
	m := &Manifest{
		Rules: []RuleSpec{
			{Name: "r1", Pattern: "x", States: []string{"root"}},
			{Name: "r2", Pattern: "y", States: []string{"all"}},
		},
	}
	cfg, err := BuildManifest(m, ActionRegistry[string]{}, ReturnConstant[string]("EOF"), ReturnConstant[string]("NOMATCH"))
	require.NoError(t, err)
	require.Equal(t, []StateID{InitialState}, cfg.Rules[0].States)
	require.Equal(t, []StateID{AllStates}, cfg.Rules[1].States)
}
