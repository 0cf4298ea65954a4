// Package lexgen builds runtime lexers from a statically declared catalog of
// regular-expression rules, lexing states and user action callbacks.
//
// A lexer built by lexgen matches input with classic lex/flex semantics:
// longest match wins, ties are broken by declaration order, and start
// conditions (inclusive or exclusive states) restrict which rules are tried
// in a given mode. Actions may yield a token, change state, push or pop
// input sources (for include-style inclusion), or ask the lexer to keep
// accumulating text via More, or give some of it back via Less.
//
// The generator does not compile rules into a merged automaton: each state's
// rule set is tried in order every time Lex needs a token. This keeps
// construction simple and the rule catalog easy to reason about, at the cost
// of O(rules) work per token instead of O(1).
package lexgen
