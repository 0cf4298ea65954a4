package lexgen

// StateID identifies a lexing state (a "start condition" in classic lex
// terms). The zero value is always the initial state.
type StateID int

const (
	// InitialState is the state a Lexer is constructed in.
	InitialState StateID = 0
	// AllStates is a reserved sentinel a Rule can list instead of (or in
	// addition to) concrete states to mark itself as active everywhere.
	AllStates StateID = 1
	// StateReserved is the lowest identifier user-declared states may use.
	// Declaring a StateDescriptor below this threshold is a configuration
	// error, so it can never collide with InitialState or AllStates.
	StateReserved StateID = 256
)

// StateDescriptor declares one lexing state: whether it is exclusive (its
// rule set does not inherit the initial state's rules) and the actions to
// run on EOF or on no rule matching, overriding the lexer-level defaults.
type StateDescriptor[T any] struct {
	ID            StateID
	Exclusive     bool
	EOFAction     Action[T]
	NoMatchAction Action[T]
}

// valid reports whether s's ID is usable: either the predefined initial
// state (declared explicitly only to override its default EOF/no-match
// actions) or a user state at or above StateReserved. AllStates is never a
// valid descriptor ID — it is a sentinel rules list, not a state.
func (s StateDescriptor[T]) valid() bool {
	return s.ID == InitialState || s.ID >= StateReserved
}
