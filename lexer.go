package lexgen

import (
	"fmt"
	"os"

	"github.com/alecthomas/units"
)

// Config declares everything a Lexer needs to be built: the rule catalog,
// the states beyond the implicit initial one, and the lexer-level default
// EOF/no-match handlers (spec section 6, "new(config) -> Lexer").
type Config[T any] struct {
	// Rules is the ordered rule catalog. Declaration order determines
	// length-tie precedence (spec section 4.2).
	Rules []Rule[T]
	// States describes any state beyond the implicit InitialState. A state
	// may also explicitly redeclare InitialState solely to override its
	// EOF/no-match actions.
	States []StateDescriptor[T]
	// DefaultEOFAction and DefaultNoMatchAction run for any state that does
	// not declare its own override. Both are required: a nil default would
	// leave Lex with no action to invoke at EOF or on unmatched input.
	DefaultEOFAction     Action[T]
	DefaultNoMatchAction Action[T]
	// MaxSourceSize caps the size of a file PushFile will map; zero means
	// unlimited. Expressed with alecthomas/units so callers can write
	// units.MiB(64) instead of a raw byte count.
	MaxSourceSize units.Base2Bytes
	// Env is free for callers to stash whatever context actions need
	// (line counters, symbol tables, loggers); the lexer never reads it.
	Env any
}

// Lexer is a constructed, ready-to-run lexer: the per-state matcher table
// built once from Config, plus the mutable state a run accumulates (spec
// section 3, "Lexer state variables").
type Lexer[T any] struct {
	Env any

	matchers  *matcherTable[T]
	maxSource units.Base2Bytes

	stack  sourceStack
	state  StateID
	cursor int
	text   string
	more   bool
	fatal  error
}

// New builds a Lexer from cfg, compiling every rule's pattern and computing
// the per-state matcher table. All configuration errors (bad patterns,
// state IDs below StateReserved, missing defaults, duplicate state IDs) are
// reported here, never from Lex.
func New[T any](cfg Config[T]) (*Lexer[T], error) {
	if cfg.DefaultEOFAction == nil {
		return nil, &ConfigError{Msg: "DefaultEOFAction must not be nil"}
	}
	if cfg.DefaultNoMatchAction == nil {
		return nil, &ConfigError{Msg: "DefaultNoMatchAction must not be nil"}
	}

	seen := map[StateID]bool{}
	states := make([]StateDescriptor[T], len(cfg.States))
	for i, s := range cfg.States {
		if !s.valid() {
			return nil, &ConfigError{Msg: "state id must be 0 (InitialState) or >= StateReserved (256)"}
		}
		if s.ID == AllStates {
			return nil, &ConfigError{Msg: "AllStates is not a declarable state"}
		}
		if seen[s.ID] {
			return nil, &ConfigError{Msg: "duplicate state id in Config.States"}
		}
		seen[s.ID] = true
		states[i] = s
	}

	catalog := make([]*Rule[T], len(cfg.Rules))
	for i := range cfg.Rules {
		r := cfg.Rules[i]
		for _, id := range r.States {
			if id != AllStates && id != InitialState && id < StateReserved {
				return nil, &ConfigError{Msg: "rule references a state id below StateReserved (256)"}
			}
		}
		if err := r.compile(); err != nil {
			return nil, err
		}
		catalog[i] = &r
	}

	stateRules := buildStateRules(catalog, states)
	table := buildMatcherTable(stateRules, states, cfg.DefaultEOFAction, cfg.DefaultNoMatchAction)

	return &Lexer[T]{
		Env:       cfg.Env,
		matchers:  table,
		maxSource: cfg.MaxSourceSize,
		state:     InitialState,
	}, nil
}

// PushSource saves the current cursor against the frame being covered, then
// pushes src as the new top of the input stack. The new frame starts
// reading at offset 0.
func (l *Lexer[T]) PushSource(src Source) {
	l.stack.push(src, l.cursor)
	l.cursor = 0
}

// PushFile mmaps path (respecting Config.MaxSourceSize) and pushes it,
// atomically: on error the input stack is left unchanged.
func (l *Lexer[T]) PushFile(path string) error {
	if l.maxSource > 0 {
		if fi, err := os.Stat(path); err == nil && fi.Size() > int64(l.maxSource) {
			return &SourceError{Path: path, Err: &ConfigError{Msg: "file exceeds MaxSourceSize"}}
		}
	}
	src, err := NewFileSource(path)
	if err != nil {
		return err
	}
	l.PushSource(src)
	return nil
}

// PopSource drops the topmost input source and resumes the cursor at the
// position it held when the frame beneath it was covered. It returns true
// iff any source remains on the stack afterwards.
func (l *Lexer[T]) PopSource() bool {
	cursor, ok := l.stack.pop()
	if !ok {
		return false
	}
	l.cursor = cursor
	return !l.stack.empty()
}

// SetState switches the active matcher to id. It returns false (no change)
// if id was never declared.
func (l *Lexer[T]) SetState(id StateID) bool {
	if l.matchers.lookup(id) == nil {
		return false
	}
	l.state = id
	return true
}

// State returns the currently active state.
func (l *Lexer[T]) State() StateID {
	return l.state
}

// Text is the lexeme matched by the most recent successful rule, valid
// until the next call to Lex.
func (l *Lexer[T]) Text() string {
	return l.text
}

// More causes the lexeme produced by the next successful match to be
// appended to Text rather than replacing it (spec section 4.7).
func (l *Lexer[T]) More() {
	l.more = true
}

// Less returns the last n characters (by byte count) of the current lexeme
// to the input: the cursor rewinds by n and Text is truncated by n. n == 0
// returns the whole of the current lexeme. Passing n greater than
// len(Text()) is a caller bug (spec section 4.7) and is not defended
// against.
func (l *Lexer[T]) Less(n int) {
	if n == 0 {
		n = len(l.text)
	}
	l.cursor -= n
	l.text = l.text[:len(l.text)-n]
}

// Fatalf aborts the current Lex call with a FatalError built from format
// and args, positioned at the current cursor. It is the only way an action
// can signal an unrecoverable condition (spec section 7).
func (l *Lexer[T]) Fatalf(format string, args ...any) {
	l.fatal = &FatalError{Msg: fmt.Sprintf(format, args...), Cursor: l.cursor}
}

// Lex runs the match loop until an action yields a token or Fatalf aborts
// it (spec section 4.5 / 4.6).
func (l *Lexer[T]) Lex() (T, error) {
	for {
		tok, yielded := l.step()
		if l.fatal != nil {
			err := l.fatal
			l.fatal = nil
			var zero T
			return zero, err
		}
		if yielded {
			return tok, nil
		}
	}
}

func (l *Lexer[T]) step() (T, bool) {
	m := l.matchers.lookup(l.state)

	if l.stack.empty() || l.atEOF() {
		return m.eofAction.invoke(l, "", nil)
	}

	data := l.stack.top().Bytes()[l.cursor:]
	best := selectBest(m.rules, data)
	if best.empty() {
		return m.noMatchAction.invoke(l, "", nil)
	}

	l.cursor += best.length
	l.updateText(best.text)

	if best.action == nil {
		var zero T
		return zero, false
	}
	return best.action.invoke(l, best.text, best.captures)
}

func (l *Lexer[T]) atEOF() bool {
	top := l.stack.top()
	return top == nil || l.cursor >= len(top.Bytes())
}

func (l *Lexer[T]) updateText(matched string) {
	if l.more {
		l.text += matched
		l.more = false
	} else {
		l.text = matched
	}
}
