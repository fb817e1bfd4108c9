package parser

import (
	"strings"

	"github.com/jcorbin/goiol/internal/diag"
	"github.com/jcorbin/goiol/internal/symtab"
	"github.com/jcorbin/goiol/internal/token"
)

type checkMode int

const (
	checkNone checkMode = iota
	checkDeclare
	checkInto
	checkAssign
	checkMath
)

// checker tracks enough of the current statement to type check assignments
// and arithmetic operands as their terminals are matched.
type checker struct {
	mode   checkMode
	words  []string
	target string // declared or INTO target, once seen
}

func (c *checker) reset() {
	c.mode = checkNone
	c.words = c.words[:0]
	c.target = ""
}

func (a *analyzer) check(tok token.Token, pos int) {
	c := &a.checker
	c.words = append(c.words, tok.Lexeme)
	if a.tab == nil {
		return
	}

	switch tok.Kind {
	case token.INT, token.STR:
		c.mode = checkDeclare

	case token.INTO:
		c.mode = checkInto

	case token.IS:
		if c.mode == checkInto || c.mode == checkDeclare {
			c.mode = checkAssign
		}

	case token.ADD, token.SUB, token.MULT, token.DIV, token.MOD:
		switch c.mode {
		case checkAssign:
			if typ, ok := a.targetType(pos); ok && typ != symtab.INT {
				a.mismatch(tok, pos, c.target, typ)
			}
			c.mode = checkMath
		case checkNone:
			c.mode = checkMath
		}

	case token.Ident:
		switch c.mode {
		case checkDeclare, checkInto:
			c.target = tok.Lexeme
		case checkAssign:
			ent, ok := a.tab.Resolve(tok.Lexeme, pos)
			if !ok {
				break
			}
			if typ, ok := a.targetType(pos); ok && typ != ent.Type {
				a.mismatch(tok, pos, c.target, typ)
			}
		case checkMath:
			if ent, ok := a.tab.Resolve(tok.Lexeme, pos); ok && ent.Type != symtab.INT {
				a.mismatch(tok, pos, tok.Lexeme, ent.Type)
			}
		}

	case token.IntLit:
		if c.mode == checkAssign {
			if typ, ok := a.targetType(pos); ok && typ != symtab.INT {
				a.mismatch(tok, pos, c.target, typ)
			}
		}
	}
}

func (a *analyzer) targetType(pos int) (symtab.Type, bool) {
	if a.checker.target == "" {
		return 0, false
	}
	ent, ok := a.tab.Resolve(a.checker.target, pos)
	return ent.Type, ok
}

func (a *analyzer) mismatch(tok token.Token, pos int, name string, typ symtab.Type) {
	a.diags.Addf(tok.Line, pos, diag.TypeMismatch,
		"type mismatch in %q: %v is %v",
		strings.Join(a.checker.words, " "), name, typ)
}
