package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goiol/internal/diag"
	"github.com/jcorbin/goiol/internal/symtab"
	"github.com/jcorbin/goiol/internal/token"
)

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestTokenize(t *testing.T) {
	toks, tab, diags := Tokenize(lines(
		`IOL`,
		`  INT a IS 5   STR name`,
		``,
		`  BEG name PRINT ADD a 10 NEWLN`,
		`LOI`,
	))
	assert.Empty(t, diags)
	assert.Equal(t, []token.Kind{
		token.IOL,
		token.INT, token.Ident, token.IS, token.IntLit, token.STR, token.Ident,
		token.BEG, token.Ident, token.PRINT, token.ADD, token.Ident, token.IntLit, token.NEWLN,
		token.LOI,
		token.End,
	}, kinds(toks))

	assert.Equal(t, token.Token{Kind: token.IntLit, Lexeme: "10", Line: 4}, toks[12])
	assert.Equal(t, 5, toks[14].Line, "LOI line")
	assert.Equal(t, token.End, toks[len(toks)-1].Kind, "stream ends with a sentinel")

	ents := tab.Entries()
	require.Len(t, ents, 2)
	assert.Equal(t, "a", ents[0].Name)
	assert.Equal(t, symtab.INT, ents[0].Type)
	assert.Equal(t, 2, ents[0].Pos)
	assert.Equal(t, "name", ents[1].Name)
	assert.Equal(t, symtab.STR, ents[1].Type)
	assert.Equal(t, 2, ents[1].Line)
}

func TestTokenize_diagnostics(t *testing.T) {
	for _, tc := range []struct {
		name   string
		src    string
		expect []diag.Diagnostic
	}{
		{
			name: "clean",
			src:  lines(`IOL INT a IS 5 LOI`),
		},
		{
			name: "unknown words",
			src:  lines(`IOL`, `INT 1a`, `PRINT x!`, `LOI`),
			expect: []diag.Diagnostic{
				{Line: 2, Pos: 2, Kind: diag.UnknownWord, Message: `unknown word "1a"`},
				{Line: 3, Pos: 4, Kind: diag.UnknownWord, Message: `unknown word "x!"`},
			},
		},
		{
			name: "duplicate declaration on second occurrence",
			src:  lines(`IOL`, `INT x`, `PRINT x`, `STR x`, `LOI`),
			expect: []diag.Diagnostic{
				{Line: 4, Pos: 6, Kind: diag.DuplicateDeclaration,
					Message: `duplicate declaration of "x" (first declared on line 2)`},
			},
		},
		{
			name: "use before declaration",
			src:  lines(`IOL`, `PRINT y`, `INT y`, `PRINT y`, `LOI`),
			expect: []diag.Diagnostic{
				{Line: 2, Pos: 2, Kind: diag.UndefinedVariable, Message: `undefined variable "y"`},
			},
		},
		{
			name: "declaration spans lines",
			src:  lines(`IOL INT`, `z LOI`),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, diags := Tokenize(tc.src)
			if tc.expect == nil {
				assert.Empty(t, diags)
			} else {
				assert.Equal(t, diag.List(tc.expect), diags)
			}
		})
	}
}

func TestTokenize_empty(t *testing.T) {
	toks, tab, diags := Tokenize("")
	assert.Equal(t, []token.Token{{Kind: token.End, Line: 1}}, toks)
	assert.Equal(t, 0, tab.Len())
	assert.Empty(t, diags)
}
