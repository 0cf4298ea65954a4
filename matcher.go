package lexgen

import "sort"

// stateMatcher is everything a state's match function closes over: its
// filtered rule list and the EOF/no-match actions to use, already resolved
// against the lexer-level defaults (spec section 4.4).
type stateMatcher[T any] struct {
	id            StateID
	rules         []*Rule[T]
	eofAction     Action[T]
	noMatchAction Action[T]
}

// matcherTable is the array of (state-id, matcher) pairs sorted ascending
// by state id, searched by binary search — the Go equivalent of the
// std::lower_bound table ctle::lexer builds once at construction.
type matcherTable[T any] struct {
	entries []*stateMatcher[T]
}

func buildMatcherTable[T any](
	stateRules map[StateID][]*Rule[T],
	states []StateDescriptor[T],
	defaultEOF, defaultNoMatch Action[T],
) *matcherTable[T] {
	byID := make(map[StateID]*stateMatcher[T], len(states)+1)

	byID[InitialState] = &stateMatcher[T]{
		id:            InitialState,
		rules:         stateRules[InitialState],
		eofAction:     defaultEOF,
		noMatchAction: defaultNoMatch,
	}
	for _, s := range states {
		eof := s.EOFAction
		if eof == nil {
			eof = defaultEOF
		}
		noMatch := s.NoMatchAction
		if noMatch == nil {
			noMatch = defaultNoMatch
		}
		byID[s.ID] = &stateMatcher[T]{
			id:            s.ID,
			rules:         stateRules[s.ID],
			eofAction:     eof,
			noMatchAction: noMatch,
		}
	}

	t := &matcherTable[T]{entries: make([]*stateMatcher[T], 0, len(byID))}
	for _, m := range byID {
		t.entries = append(t.entries, m)
	}
	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].id < t.entries[j].id })
	return t
}

// lookup finds the matcher for id, or nil if no such state was declared.
func (t *matcherTable[T]) lookup(id StateID) *stateMatcher[T] {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].id >= id })
	if i < len(t.entries) && t.entries[i].id == id {
		return t.entries[i]
	}
	return nil
}
