package lexgen

// buildStateRules computes, once and for all, the subset of catalog active
// in each declared state plus the initial state (spec section 4.3). Each
// subset preserves the catalog's original declaration order: tie-break
// priority between rules must reflect the overall catalog order, not the
// order in which a rule happened to be pulled into a given state's subset.
func buildStateRules[T any](catalog []*Rule[T], states []StateDescriptor[T]) map[StateID][]*Rule[T] {
	out := make(map[StateID][]*Rule[T], len(states)+1)
	out[InitialState] = filterFor(catalog, InitialState, false)
	for _, s := range states {
		out[s.ID] = filterFor(catalog, s.ID, s.Exclusive)
	}
	return out
}

func filterFor[T any](catalog []*Rule[T], id StateID, exclusive bool) []*Rule[T] {
	var out []*Rule[T]
	for _, r := range catalog {
		if r.isValidIn(id) {
			out = append(out, r)
			continue
		}
		if !exclusive && id != InitialState && r.isValidIn(InitialState) {
			out = append(out, r)
		}
	}
	return out
}
