package lexgen

import (
	"fmt"
	"regexp"
)

// Rule is one pattern, its action and the set of states in which it is
// live. Rules are immutable once built by New; the catalog passed to
// Config[T].Rules is trialled in declaration order on every match attempt,
// so earlier rules win length ties (spec section 4.2).
type Rule[T any] struct {
	// Name is used only in diagnostics (configuration errors); it has no
	// effect on matching.
	Name string
	// Pattern is a regular expression in stdlib regexp/RE2 syntax. It is
	// always matched anchored at the current cursor, never searched.
	Pattern string
	// Action runs when this rule produces the longest match. A nil Action
	// is equivalent to VoidAction(func(*Lexer[T], string, []string){}): the
	// rule consumes its match and the loop continues.
	Action Action[T]
	// States lists the StateIDs (or AllStates) this rule is active in. An
	// empty States is equivalent to []StateID{InitialState}.
	States []StateID

	re *regexp.Regexp
}

func (r *Rule[T]) compile() error {
	re, err := regexp.Compile(`\A(?:` + r.Pattern + `)`)
	if err != nil {
		return &ConfigError{Msg: fmt.Sprintf("rule %q: %s", r.displayName(), err)}
	}
	r.re = re
	if len(r.States) == 0 {
		r.States = []StateID{InitialState}
	}
	return nil
}

func (r *Rule[T]) displayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Pattern
}

// isValidIn reports whether this rule is a member of the per-state subset
// for state s, independent of s's inclusive/exclusive flag (that
// composition is buildStateRules' job, not the rule's).
func (r *Rule[T]) isValidIn(s StateID) bool {
	for _, id := range r.States {
		if id == AllStates || id == s {
			return true
		}
	}
	return false
}

// match attempts to match the pattern anchored at the start of data. It
// returns a zero-length matchResult on failure. data is never mutated or
// retained; the returned matchResult copies out only the bytes it matched.
func (r *Rule[T]) match(data []byte) matchResult[T] {
	loc := r.re.FindSubmatchIndex(data)
	if loc == nil {
		return matchResult[T]{}
	}
	length := loc[1] - loc[0]
	var captures []string
	if n := len(loc)/2 - 1; n > 0 {
		captures = make([]string, n)
		for i := 1; i <= n; i++ {
			if loc[2*i] < 0 {
				continue
			}
			captures[i-1] = string(data[loc[2*i]:loc[2*i+1]])
		}
	}
	return matchResult[T]{
		text:     string(data[loc[0]:loc[1]]),
		length:   length,
		captures: captures,
		action:   r.Action,
	}
}
