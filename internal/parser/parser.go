// Package parser validates an IOL token stream against the fixed grammar with
// a table-driven LL(1) analyzer, running type checks as terminals match.
package parser

import (
	"fmt"
	"strings"

	"github.com/jcorbin/goiol/internal/diag"
	"github.com/jcorbin/goiol/internal/symtab"
	"github.com/jcorbin/goiol/internal/token"
)

// Option customizes an Analyze call.
type Option func(a *analyzer)

// WithLogf enables step tracing of the parse stack.
func WithLogf(logfn func(mess string, args ...interface{})) Option {
	return func(a *analyzer) { a.logfn = logfn }
}

// Analyze checks toks against the grammar and returns every syntax and type
// diagnostic found, in encounter order. It never stops early: structural
// errors trigger panic-mode recovery and scanning continues.
//
// Type checks consult tab, which is only read. A nil tab disables them, as
// when re-parsing a token projection.
func Analyze(toks []token.Token, tab *symtab.Table, opts ...Option) diag.List {
	a := analyzer{tab: tab}
	for _, opt := range opts {
		opt(&a)
	}
	a.in.init(toks)
	a.stack = []symbol{term(token.End), nt(program)}
	a.run()
	return a.diags
}

type analyzer struct {
	tab   *symtab.Table
	in    inputBuffer
	stack []symbol // top is last
	diags diag.List
	logfn func(mess string, args ...interface{})

	sawLOI     bool
	recovering bool

	checker
}

func (a *analyzer) logf(mess string, args ...interface{}) {
	if a.logfn != nil {
		a.logfn(mess, args...)
	}
}

func (a *analyzer) run() {
	for a.in.fill() {
		if a.recovering {
			a.resync()
			continue
		}
		a.step()
	}
	if !a.sawLOI {
		a.diags.Addf(a.in.lastLine(), a.in.pos, diag.MissingTerminator, "expected LOI at end of file")
	}
}

func (a *analyzer) step() {
	top := a.pop()
	tok, pos := a.in.peek()
	a.logf("parse %v <- %v @%v stack:%v", top, tok, pos, a.stack)

	if top == nt(stmt) {
		a.checker.reset()
	}
	if tok.Kind == token.LOI && !a.sawLOI {
		a.sawLOI = true
		if top == nt(stmt) {
			// early terminator ends the program here
			top = term(token.LOI)
			a.stack = append(a.stack[:0], term(token.End))
		}
	}

	n, isNT := top.nonterminal()
	switch {
	case !isNT && top.kind() == tok.Kind:
		a.in.next()
		a.check(tok, pos)

	case !isNT && top.kind() == token.End:
		a.sawLOI = true
		a.fail(tok, pos, diag.TrailingTokens, "expected no tokens after LOI, got %v", describe(tok))

	case !isNT:
		a.fail(tok, pos, diag.UnexpectedToken, "expected %v, got %v", top.kind(), describe(tok))

	case !isTerminal[tok.Kind]:
		a.fail(tok, pos, diag.UnexpectedToken, "expected %v, got %v", oneOf(expected(n)), describe(tok))

	default:
		num := parseTable[n][tok.Kind]
		if num == 0 {
			a.fail(tok, pos, diag.UnexpectedToken, "expected %v, got %v", oneOf(expected(n)), describe(tok))
			return
		}
		prod := productions[num]
		a.logf("apply %v: %v", num, prod)
		for i := len(prod.rhs) - 1; i >= 0; i-- {
			a.stack = append(a.stack, prod.rhs[i])
		}
	}
}

func (a *analyzer) pop() symbol {
	i := len(a.stack) - 1
	if i < 0 {
		return term(token.End)
	}
	top := a.stack[i]
	a.stack = a.stack[:i]
	return top
}

// fail records a structural error, consumes the offending token, and arms
// recovery for the next step.
func (a *analyzer) fail(tok token.Token, pos int, kind diag.Kind, mess string, args ...interface{}) {
	a.diags.Addf(tok.Line, pos, kind, mess, args...)
	a.in.next()
	a.recovering = true
}

// resync resets the stack to the start of a statement, or to the end marker
// once LOI has been seen.
func (a *analyzer) resync() {
	a.recovering = false
	if a.sawLOI {
		a.stack = append(a.stack[:0], term(token.End))
	} else {
		a.stack = append(a.stack[:0], term(token.End), term(token.LOI), nt(stmts), nt(stmt))
	}
	a.logf("resync stack:%v", a.stack)
}

func describe(tok token.Token) string {
	if tok.Kind.IsKeyword() || tok.Kind == token.End {
		return tok.Kind.String()
	}
	return fmt.Sprintf("%v %q", tok.Kind, tok.Lexeme)
}

func oneOf(ks []token.Kind) string {
	if len(ks) == 1 {
		return ks[0].String()
	}
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = k.String()
	}
	return "one of " + strings.Join(parts, ", ")
}

// inputBuffer holds the tokens of one source line at a time, refilled from
// the rest of the stream as it drains. Blank lines carry no tokens and so are
// skipped naturally.
type inputBuffer struct {
	rest []token.Token
	buf  []token.Token
	pos  int // stream index of buf[0]
	line int
}

func (in *inputBuffer) init(toks []token.Token) {
	if n := len(toks); n > 0 && toks[n-1].Kind == token.End {
		toks = toks[:n-1]
	}
	in.rest = toks
	in.buf = nil
	in.pos = 0
	in.line = 0
}

// fill loads the next line once the current one is consumed; it returns false
// when input is exhausted.
func (in *inputBuffer) fill() bool {
	if len(in.buf) > 0 {
		return true
	}
	if len(in.rest) == 0 {
		return false
	}
	in.line = in.rest[0].Line
	i := 1
	for i < len(in.rest) && in.rest[i].Line == in.line {
		i++
	}
	in.buf, in.rest = in.rest[:i], in.rest[i:]
	return true
}

func (in *inputBuffer) peek() (token.Token, int) { return in.buf[0], in.pos }

func (in *inputBuffer) next() {
	in.buf = in.buf[1:]
	in.pos++
}

func (in *inputBuffer) lastLine() int {
	if in.line == 0 {
		return 1
	}
	return in.line
}
