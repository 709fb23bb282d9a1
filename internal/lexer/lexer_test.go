package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, in string) []Token {
	t.Helper()
	l := New([]byte(in))
	var out []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out
}

func TestLexerKinds(t *testing.T) {
	toks := tokens(t, `{"a":[1,true,false,null,"x\"y"]}`)
	require.NotEmpty(t, toks)
	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{
		ObjOpen, String, Colon, ArrOpen,
		Number, Comma, True, Comma, False, Comma, Null, Comma, String,
		ArrClose, ObjClose,
	}, kinds)
}

func TestLexerStringIncludesQuotesAndEscapes(t *testing.T) {
	in := `"a\"b"`
	toks := tokens(t, in)
	require.Len(t, toks, 1)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, in, in[toks[0].Start:toks[0].End])
}

func TestLexerNumberForms(t *testing.T) {
	for _, in := range []string{"0", "-1", "1.5", "-1.5e10", "2E-3"} {
		toks := tokens(t, in)
		require.Len(t, toks, 1, in)
		assert.Equal(t, Number, toks[0].Kind, in)
		assert.Equal(t, in, in[toks[0].Start:toks[0].End], in)
	}
}

func TestLexerWhitespaceSkipped(t *testing.T) {
	toks := tokens(t, "  {  } \n")
	require.Len(t, toks, 2)
	assert.Equal(t, ObjOpen, toks[0].Kind)
	assert.Equal(t, ObjClose, toks[1].Kind)
}
