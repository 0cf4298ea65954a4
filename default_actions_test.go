package lexgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReturnConstantIgnoresInput(t *testing.T) {
	act := ReturnConstant[string]("TOK")
	tok, ok := act.invoke(nil, "anything", []string{"x"})
	require.True(t, ok)
	require.Equal(t, "TOK", tok)
}

func TestEchoWritesMatchAndCaptures(t *testing.T) {
	var buf bytes.Buffer
	act := Echo[string](&buf)
	_, ok := act.invoke(nil, "key=value", []string{"key", "value"})
	require.False(t, ok)
	require.Equal(t, "key=valuekeyvalue\n", buf.String())
}

func TestPopOrEOFContinuesWhenFramesRemain(t *testing.T) {
	lex := simpleLexer(t, nil, nil)
	lex.PushSource(NewStringSource("outer"))
	lex.PushSource(NewStringSource("inner"))

	act := PopOrEOF[string]("EOF")
	tok, ok := act.invoke(lex, "", nil)
	require.False(t, ok, "a frame remains, so PopOrEOF must not yield yet")
	require.Equal(t, "", tok)
}

func TestPopOrEOFYieldsWhenStackEmpties(t *testing.T) {
	lex := simpleLexer(t, nil, nil)
	lex.PushSource(NewStringSource("only"))

	act := PopOrEOF[string]("EOF")
	tok, ok := act.invoke(lex, "", nil)
	require.True(t, ok)
	require.Equal(t, "EOF", tok)
}
