package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindCategory(t *testing.T) {
	assert.Equal(t, Lexical, UnknownWord.Category())
	assert.Equal(t, Semantic, DuplicateDeclaration.Category())
	assert.Equal(t, Semantic, UndefinedVariable.Category())
	assert.Equal(t, Semantic, TypeMismatch.Category())
	assert.Equal(t, Syntax, UnexpectedToken.Category())
	assert.Equal(t, Syntax, MissingTerminator.Category())
	assert.Equal(t, Syntax, TrailingTokens.Category())
}

func TestMerge(t *testing.T) {
	var lex, parse List
	lex.Addf(2, 5, UnknownWord, "unknown word %q", "x!")
	lex.Addf(4, 9, UndefinedVariable, "undefined variable %q", "y")
	parse.Addf(1, 1, UnexpectedToken, "first")
	parse.Addf(2, 3, TypeMismatch, "before the unknown word")
	parse.Addf(2, 5, UnexpectedToken, "same token, after lexical")
	parse.Addf(4, 12, MissingTerminator, "last")

	all := Merge(lex, parse)
	require.Len(t, all, 6)
	assert.Equal(t, []Kind{
		UnexpectedToken,
		TypeMismatch,
		UnknownWord,
		UnexpectedToken,
		UndefinedVariable,
		MissingTerminator,
	}, all.Kinds())
	assert.Equal(t, 3, all.Count(Syntax))
	assert.Equal(t, 1, all.Count(Lexical))
	assert.Equal(t, 2, all.Count(Semantic))
}

func TestListErr(t *testing.T) {
	var l List
	assert.NoError(t, l.Err())

	l.Addf(3, 0, MissingTerminator, "expected LOI at end of file")
	assert.EqualError(t, l.Err(), "line 3: syntax error: expected LOI at end of file")

	l.Addf(4, 1, UnknownWord, "unknown word %q", "$")
	assert.EqualError(t, l.Err(), "2 errors:"+
		"\n\tline 3: syntax error: expected LOI at end of file"+
		"\n\tline 4: lexical error: unknown word \"$\"")
}
