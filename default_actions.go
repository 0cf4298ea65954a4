package lexgen

import (
	"fmt"
	"io"
)

// ReturnConstant builds an action that ignores its arguments and always
// yields the same token, e.g. for a rule that matches a single fixed
// keyword or punctuation symbol.
func ReturnConstant[T any](token T) Action[T] {
	return TokenAction(func(*Lexer[T], string, []string) T {
		return token
	})
}

// Echo builds an action that writes the matched text (and any captures) to
// w, one line per match, and never yields a token. Useful for rules whose
// only purpose is to observe input, e.g. diagnostic passthrough rules.
func Echo[T any](w io.Writer) Action[T] {
	return VoidAction(func(_ *Lexer[T], whole string, captures []string) {
		fmt.Fprint(w, whole)
		for _, c := range captures {
			fmt.Fprint(w, c)
		}
		fmt.Fprintln(w)
	})
}

// PopOrEOF builds the canonical EOF action: pop the current input source,
// and only emit eofToken if the input stack is now empty. This resolves the
// "which EOF prototype is canonical" open question in favor of always
// continuing into the frame uncovered by the pop when one remains.
func PopOrEOF[T any](eofToken T) Action[T] {
	return OptionalAction(func(lx *Lexer[T], _ string, _ []string) (T, bool) {
		if lx.PopSource() {
			var zero T
			return zero, false
		}
		return eofToken, true
	})
}
