// Package compiler runs the IOL front end over one source and carries the
// result, with a success flag that gates execution.
package compiler

import (
	"context"
	"errors"

	"github.com/jcorbin/goiol/internal/diag"
	"github.com/jcorbin/goiol/internal/interp"
	"github.com/jcorbin/goiol/internal/lexer"
	"github.com/jcorbin/goiol/internal/parser"
	"github.com/jcorbin/goiol/internal/symtab"
	"github.com/jcorbin/goiol/internal/token"
)

// ErrNotCompiled is returned by Execute on a result that has diagnostics.
var ErrNotCompiled = errors.New("program has compile errors")

// Result is one compile of a named source.
type Result struct {
	Name        string
	Source      string
	Tokens      []token.Token
	Table       *symtab.Table
	Diagnostics diag.List
	OK          bool
}

// Variable is a declared name and its type.
type Variable struct {
	Name string
	Type symtab.Type
}

// Option customizes a Compile call.
type Option func(*config)

type config struct {
	parseOpts []parser.Option
}

// WithParseTrace traces the parser's steps through logfn.
func WithParseTrace(logfn func(mess string, args ...interface{})) Option {
	return func(c *config) { c.parseOpts = append(c.parseOpts, parser.WithLogf(logfn)) }
}

// Compile tokenizes and analyzes src. Every diagnostic found is reported,
// ordered by line and then token position.
func Compile(name, src string, opts ...Option) *Result {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	toks, tab, lexDiags := lexer.Tokenize(src)
	parseDiags := parser.Analyze(toks, tab, c.parseOpts...)
	diags := diag.Merge(lexDiags, parseDiags)
	return &Result{
		Name:        name,
		Source:      src,
		Tokens:      toks,
		Table:       tab,
		Diagnostics: diags,
		OK:          len(diags) == 0,
	}
}

// Err returns the diagnostics as an error, or nil when OK.
func (res *Result) Err() error { return res.Diagnostics.Err() }

// Projection renders the token projection of the source.
func (res *Result) Projection() string { return lexer.Project(res.Source, res.Tokens) }

// Variables lists the declared variables in declaration order.
func (res *Result) Variables() []Variable {
	ents := res.Table.Entries()
	vars := make([]Variable, len(ents))
	for i, ent := range ents {
		vars[i] = Variable{ent.Name, ent.Type}
	}
	return vars
}

// Execute runs the compiled program; it refuses unless OK. The compiled
// table is never modified, so a result may be executed any number of times.
func (res *Result) Execute(ctx context.Context, opts ...interp.Option) (*interp.Outcome, error) {
	if !res.OK {
		return nil, ErrNotCompiled
	}
	return interp.Execute(ctx, res.Tokens, res.Table, opts...)
}

// CheckProjection re-parses a token projection for structure only; there are
// no identities left to type check.
func CheckProjection(text string) (diag.List, error) {
	toks, err := lexer.ReadProjection(text)
	if err != nil {
		return nil, err
	}
	return parser.Analyze(toks, nil), nil
}
