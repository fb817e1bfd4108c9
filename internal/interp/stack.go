package interp

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/jcorbin/goiol/internal/symtab"
	"github.com/jcorbin/goiol/internal/token"
)

// entry is a slot on the evaluation stack: a pending operator when op is
// set, a reduced value otherwise.
type entry struct {
	op  token.Kind
	val symtab.Value
}

func (e entry) isOp() bool { return e.op != token.Invalid }

func (e entry) String() string {
	if e.isOp() {
		return e.op.String()
	}
	if e.val.Type == symtab.STR {
		return fmt.Sprintf("%q", e.val.Str)
	}
	return e.val.String()
}

type stack []entry

func (s stack) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// reducible reports whether the top three entries are an operator followed
// by two values.
func (s stack) reducible() bool {
	n := len(s)
	return n >= 3 && s[n-3].isOp() && !s[n-2].isOp() && !s[n-1].isOp()
}

// done reports whether evaluation left exactly one value.
func (s stack) done() bool { return len(s) == 1 && !s[0].isOp() }

// reduce pops one operator and its operands, pushing the result.
func (m *machine) reduce() {
	n := len(m.stack)
	op, a, b := m.stack[n-3].op, m.stack[n-2].val, m.stack[n-1].val
	m.stack = m.stack[:n-3]
	if a.Type != symtab.INT || b.Type != symtab.INT {
		m.halt(fmt.Errorf("line %v: %v needs INT operands, got %v and %v", m.line(), op, a.Type, b.Type))
	}
	r := new(big.Int)
	switch op {
	case token.ADD:
		r.Add(a.Int, b.Int)
	case token.SUB:
		r.Sub(a.Int, b.Int)
	case token.MULT:
		r.Mul(a.Int, b.Int)
	case token.DIV, token.MOD:
		if b.Int.Sign() == 0 {
			m.halt(&Fault{Kind: DivisionByZero, Line: m.line()})
		}
		if op == token.DIV {
			r.Quo(a.Int, b.Int)
		} else {
			r.Rem(a.Int, b.Int)
		}
	default:
		m.halt(fmt.Errorf("line %v: invalid operator %v", m.line(), op))
	}
	m.logf("reduce %v %v %v = %v", op, a, b, r)
	m.stack = append(m.stack, entry{val: symtab.Value{Type: symtab.INT, Int: r}})
}
