// Package interp executes a compiled IOL token stream on a small stack
// machine over a private copy of the symbol table.
package interp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/goiol/internal/flushio"
	"github.com/jcorbin/goiol/internal/symtab"
	"github.com/jcorbin/goiol/internal/token"
)

// Outcome is what a run produced up to its end or its fault.
type Outcome struct {
	Events []Event
	Table  *symtab.Table // the working table as left by the run
}

// Output renders the outcome's events.
func (o *Outcome) Output() string { return Render(o.Events) }

// Execute runs toks against a private clone of tab; tab itself is never
// modified, so repeated runs start from the same state.
//
// The returned Outcome is never nil. The error is a *Fault for runtime faults,
// or another error when toks is not executable (an unknown variable, an
// output failure).
func Execute(ctx context.Context, toks []token.Token, tab *symtab.Table, opts ...Option) (*Outcome, error) {
	m := machine{toks: toks}
	m.apply(opts...)
	m.table = tab.Clone()
	err := isolate("iol", func() error {
		m.run(ctx)
		return m.out.Flush()
	})
	if m.dumpTo != nil {
		dumper{m: &m, out: m.dumpTo}.dump(err)
	}
	return &Outcome{Events: m.events, Table: m.table}, err
}

type machine struct {
	toks  []token.Token
	table *symtab.Table
	pc    int

	task       task
	evaluating bool
	ready      bool
	value      symtab.Value
	stack      stack

	events   []Event
	out      flushio.WriteFlusher
	prompter Prompter
	dumpTo   io.Writer
	logfn    func(mess string, args ...interface{})
}

// task is the pending action, keyed by the most recent action token.
type task struct {
	kind  token.Kind // Invalid when idle
	index int
}

func (t task) String() string {
	if t.kind == token.Invalid {
		return "idle"
	}
	return fmt.Sprintf("%v@%v", t.kind, t.index)
}

func (m *machine) logf(mess string, args ...interface{}) {
	if m.logfn != nil {
		m.logfn(mess, args...)
	}
}

func (m *machine) line() int {
	if m.pc < len(m.toks) {
		return m.toks[m.pc].Line
	}
	return 0
}

func (m *machine) run(ctx context.Context) {
	for m.pc = 0; m.pc < len(m.toks); m.pc++ {
		tok := m.toks[m.pc]
		switch tok.Kind {
		case token.BEG, token.PRINT, token.NEWLN, token.IS:
			m.task = task{tok.Kind, m.pc}
		}
		if m.evaluating {
			m.eval(tok)
		}
		m.logf("@%v %v task:%v stack:%v", m.pc, tok, m.task, m.stack)
		m.dispatch(ctx, tok)
	}
}

func (m *machine) eval(tok token.Token) {
	switch tok.Kind {
	case token.Ident:
		m.stack = append(m.stack, entry{val: m.load(tok.Lexeme)})
	case token.IntLit:
		val, err := symtab.ParseInt(tok.Lexeme)
		if err != nil {
			m.halt(fmt.Errorf("line %v: %w", tok.Line, err))
		}
		m.stack = append(m.stack, entry{val: val})
	case token.ADD, token.SUB, token.MULT, token.DIV, token.MOD:
		m.stack = append(m.stack, entry{op: tok.Kind})
	}
	for m.stack.reducible() {
		m.reduce()
	}
	if m.stack.done() {
		m.value, m.ready = m.stack[0].val, true
		m.stack = m.stack[:0]
		m.evaluating = false
	}
}

func (m *machine) dispatch(ctx context.Context, tok token.Token) {
	switch m.task.kind {
	case token.BEG:
		if tok.Kind == token.Ident {
			m.input(ctx, tok)
			m.task = task{}
		}

	case token.PRINT:
		if !m.ready {
			m.evaluating = true
			return
		}
		m.emit(Event{Kind: Text, Text: m.take().String()})
		m.task = task{}

	case token.NEWLN:
		m.emit(Event{Kind: Newline})
		m.task = task{}

	case token.IS:
		if !m.ready {
			m.evaluating = true
			return
		}
		if m.task.index == 0 {
			m.halt(fmt.Errorf("line %v: IS without a target", tok.Line))
		}
		m.store(m.toks[m.task.index-1].Lexeme, m.take())
		m.task = task{}
	}
}

func (m *machine) take() symtab.Value {
	val := m.value
	m.value, m.ready = symtab.Value{}, false
	return val
}

func (m *machine) load(name string) symtab.Value {
	val, ok := m.table.Get(name)
	if !ok {
		m.halt(fmt.Errorf("line %v: undefined variable %q", m.line(), name))
	}
	return val
}

func (m *machine) store(name string, val symtab.Value) {
	if !m.table.Set(name, val) {
		m.halt(fmt.Errorf("line %v: undefined variable %q", m.line(), name))
	}
	m.logf("store %v = %v", name, val)
}

func (m *machine) emit(ev Event) {
	m.events = append(m.events, ev)
	if _, err := io.WriteString(m.out, ev.String()); err != nil {
		m.halt(err)
	}
}

// input runs one BEG exchange for the variable named by tok.
func (m *machine) input(ctx context.Context, tok token.Token) {
	ent, ok := m.table.Lookup(tok.Lexeme)
	if !ok {
		m.halt(fmt.Errorf("line %v: undefined variable %q", tok.Line, tok.Lexeme))
	}
	if err := m.out.Flush(); err != nil {
		m.halt(err)
	}

	ans, err := m.prompter.Prompt(ctx, ent.Name)
	if err != nil {
		if errors.Is(err, ErrInputCancelled) ||
			errors.Is(err, io.EOF) ||
			errors.Is(err, context.Canceled) {
			m.halt(&Fault{Kind: InputCancelled, Line: tok.Line, Name: ent.Name})
		}
		m.halt(err)
	}
	m.logf("input %v = %q", ent.Name, ans)

	if ent.Type == symtab.STR {
		m.store(ent.Name, symtab.StrValue(ans))
		return
	}
	if !token.IsDigits(ans) {
		m.halt(&Fault{Kind: TypeMismatchOnInput, Line: tok.Line, Name: ent.Name, Input: ans})
	}
	val, err := symtab.ParseInt(ans)
	if err != nil {
		m.halt(err)
	}
	m.store(ent.Name, val)
}
