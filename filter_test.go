package lexgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, r *Rule[string]) *Rule[string] {
	t.Helper()
	require.NoError(t, r.compile())
	return r
}

func TestBuildStateRulesInitialOnly(t *testing.T) {
	const strBody StateID = StateReserved

	global := mustCompile(t, &Rule[string]{Pattern: `g`, States: []StateID{AllStates}})
	onlyInitial := mustCompile(t, &Rule[string]{Pattern: `i`})
	onlyStr := mustCompile(t, &Rule[string]{Pattern: `s`, States: []StateID{strBody}})

	catalog := []*Rule[string]{global, onlyInitial, onlyStr}
	states := []StateDescriptor[string]{{ID: strBody, Exclusive: true}}

	subsets := buildStateRules(catalog, states)
	require.ElementsMatch(t, []*Rule[string]{global, onlyInitial}, subsets[InitialState])
	// Exclusive state: only rules explicitly listing it (or all-states).
	require.ElementsMatch(t, []*Rule[string]{global, onlyStr}, subsets[strBody])
}

func TestBuildStateRulesNonExclusiveIsSuperset(t *testing.T) {
	const cond StateID = StateReserved

	initOnly := mustCompile(t, &Rule[string]{Pattern: `i`})
	condOnly := mustCompile(t, &Rule[string]{Pattern: `c`, States: []StateID{cond}})

	catalog := []*Rule[string]{initOnly, condOnly}
	states := []StateDescriptor[string]{{ID: cond, Exclusive: false}}

	subsets := buildStateRules(catalog, states)
	for _, r := range subsets[InitialState] {
		require.Contains(t, subsets[cond], r)
	}
	require.ElementsMatch(t, []*Rule[string]{initOnly, condOnly}, subsets[cond])
}

func TestBuildStateRulesPreservesCatalogOrder(t *testing.T) {
	const cond StateID = StateReserved

	first := mustCompile(t, &Rule[string]{Pattern: `a`, States: []StateID{cond}})
	second := mustCompile(t, &Rule[string]{Pattern: `b`})

	catalog := []*Rule[string]{first, second}
	states := []StateDescriptor[string]{{ID: cond, Exclusive: false}}

	subsets := buildStateRules(catalog, states)
	// second is only pulled into cond's subset via initial-state inheritance,
	// but must still land after first: tie-break priority follows catalog
	// declaration order, not which predicate admitted the rule.
	require.Equal(t, []*Rule[string]{first, second}, subsets[cond])
}
