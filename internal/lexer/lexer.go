// Package lexer turns IOL source text into a token stream and the symbol
// table of its declarations.
package lexer

import (
	"strings"

	"github.com/jcorbin/goiol/internal/diag"
	"github.com/jcorbin/goiol/internal/symtab"
	"github.com/jcorbin/goiol/internal/token"
)

// Tokenize splits src into lines and whitespace-delimited words, classifies
// every word, and performs declare/use bookkeeping in the same pass.
//
// An IDENT directly after INT or STR declares that name; any other IDENT
// uses it and must already be declared. This is the only place where
// declaration order is checked. The returned stream always ends with an End
// token.
func Tokenize(src string) ([]token.Token, *symtab.Table, diag.List) {
	var lex lexer
	lex.tab = symtab.New()
	for i, line := range strings.Split(src, "\n") {
		lex.line = i + 1
		for _, word := range strings.Fields(line) {
			lex.word(word)
		}
	}
	lex.toks = append(lex.toks, token.Token{Kind: token.End, Line: lex.line})
	return lex.toks, lex.tab, lex.diags
}

type lexer struct {
	line  int
	toks  []token.Token
	tab   *symtab.Table
	diags diag.List
}

func (lex *lexer) word(word string) {
	pos := len(lex.toks)
	tok := token.Token{Kind: token.Classify(word), Lexeme: word, Line: lex.line}
	lex.toks = append(lex.toks, tok)

	switch tok.Kind {
	case token.ErrLex:
		lex.diags.Addf(tok.Line, pos, diag.UnknownWord, "unknown word %q", word)

	case token.Ident:
		if prev := lex.prev(pos); prev.IsType() {
			lex.declare(tok, pos, declType(prev))
		} else if _, ok := lex.tab.Lookup(word); !ok {
			lex.diags.Addf(tok.Line, pos, diag.UndefinedVariable, "undefined variable %q", word)
		}
	}
}

func (lex *lexer) prev(pos int) token.Kind {
	if pos > 0 {
		return lex.toks[pos-1].Kind
	}
	return token.Invalid
}

func (lex *lexer) declare(tok token.Token, pos int, typ symtab.Type) {
	if err := lex.tab.Declare(tok.Lexeme, typ, pos, tok.Line); err != nil {
		first, _ := lex.tab.Lookup(tok.Lexeme)
		lex.diags.Addf(tok.Line, pos, diag.DuplicateDeclaration,
			"duplicate declaration of %q (first declared on line %v)", tok.Lexeme, first.Line)
	}
}

func declType(kind token.Kind) symtab.Type {
	if kind == token.STR {
		return symtab.STR
	}
	return symtab.INT
}
