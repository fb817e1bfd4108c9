package parser

import (
	"fmt"
	"strings"

	"github.com/jcorbin/goiol/internal/token"
)

// nonterminal names a grammar variable.
type nonterminal int

const (
	program nonterminal = iota + 1
	stmts
	stmt
	varDecl
	varEnd
	asn
	expr
)

var nonterminalNames = [...]string{
	program: "program",
	stmts:   "stmts",
	stmt:    "stmt",
	varDecl: "var",
	varEnd:  "varend",
	asn:     "asn",
	expr:    "expr",
}

func (n nonterminal) String() string {
	if n > 0 && int(n) < len(nonterminalNames) {
		return nonterminalNames[n]
	}
	return fmt.Sprintf("nonterminal(%d)", int(n))
}

// symbol is a grammar symbol on the parse stack: a positive value is a
// terminal token kind, a negative one a nonterminal.
type symbol int

func term(k token.Kind) symbol    { return symbol(k) }
func nt(n nonterminal) symbol     { return symbol(-n) }
func (s symbol) kind() token.Kind { return token.Kind(s) }

func (s symbol) nonterminal() (nonterminal, bool) {
	if s < 0 {
		return nonterminal(-s), true
	}
	return 0, false
}

func (s symbol) String() string {
	if n, ok := s.nonterminal(); ok {
		return n.String()
	}
	return s.kind().String()
}

type production struct {
	lhs nonterminal
	rhs []symbol // empty for an ε production
}

func (p production) String() string {
	if len(p.rhs) == 0 {
		return fmt.Sprintf("%v -> ε", p.lhs)
	}
	parts := make([]string, len(p.rhs))
	for i, s := range p.rhs {
		parts[i] = s.String()
	}
	return fmt.Sprintf("%v -> %v", p.lhs, strings.Join(parts, " "))
}

// productions are numbered from 1 so that a zero table cell means "no entry".
var productions = [...]production{
	1: {program, []symbol{term(token.IOL), nt(stmts), term(token.LOI)}},

	2: {stmts, []symbol{nt(stmt), nt(stmts)}},
	3: {stmts, nil},

	4: {stmt, []symbol{nt(varDecl)}},
	5: {stmt, []symbol{nt(asn)}},
	6: {stmt, []symbol{nt(expr)}},
	7: {stmt, []symbol{term(token.PRINT), nt(expr)}},
	8: {stmt, []symbol{term(token.NEWLN)}},

	9:  {varDecl, []symbol{term(token.INT), term(token.Ident), nt(varEnd)}},
	10: {varDecl, []symbol{term(token.STR), term(token.Ident), nt(varEnd)}},

	11: {varEnd, []symbol{term(token.IS), term(token.IntLit)}},
	12: {varEnd, nil},

	13: {asn, []symbol{term(token.INTO), term(token.Ident), term(token.IS), nt(expr)}},
	14: {asn, []symbol{term(token.BEG), term(token.Ident)}},

	15: {expr, []symbol{term(token.ADD), nt(expr), nt(expr)}},
	16: {expr, []symbol{term(token.SUB), nt(expr), nt(expr)}},
	17: {expr, []symbol{term(token.MULT), nt(expr), nt(expr)}},
	18: {expr, []symbol{term(token.DIV), nt(expr), nt(expr)}},
	19: {expr, []symbol{term(token.MOD), nt(expr), nt(expr)}},
	20: {expr, []symbol{term(token.Ident)}},
	21: {expr, []symbol{term(token.IntLit)}},
}

// terminals is the lookahead alphabet of the parse table, in the order used
// when listing expected tokens.
var terminals = []token.Kind{
	token.IOL,
	token.INT,
	token.STR,
	token.INTO,
	token.BEG,
	token.PRINT,
	token.NEWLN,
	token.LOI,
	token.IS,
	token.ADD,
	token.SUB,
	token.MULT,
	token.DIV,
	token.MOD,
	token.Ident,
	token.IntLit,
}

// parseTable maps (nonterminal, lookahead) to a production number.
var parseTable = map[nonterminal]map[token.Kind]int{
	program: {
		token.IOL: 1,
	},
	stmts: {
		token.INT: 2, token.STR: 2, token.INTO: 2, token.BEG: 2, token.PRINT: 2, token.NEWLN: 2,
		token.LOI: 3,
		token.ADD: 2, token.SUB: 2, token.MULT: 2, token.DIV: 2, token.MOD: 2,
		token.Ident: 2, token.IntLit: 2,
	},
	stmt: {
		token.INT: 4, token.STR: 4,
		token.INTO: 5, token.BEG: 5,
		token.PRINT: 7,
		token.NEWLN: 8,
		token.ADD: 6, token.SUB: 6, token.MULT: 6, token.DIV: 6, token.MOD: 6,
		token.Ident: 6, token.IntLit: 6,
	},
	varDecl: {
		token.INT: 9,
		token.STR: 10,
	},
	varEnd: {
		token.INT: 12, token.STR: 12, token.INTO: 12, token.BEG: 12, token.PRINT: 12, token.NEWLN: 12,
		token.LOI: 12,
		token.IS: 11,
		token.ADD: 12, token.SUB: 12, token.MULT: 12, token.DIV: 12, token.MOD: 12,
		token.Ident: 12, token.IntLit: 12,
	},
	asn: {
		token.INTO: 13,
		token.BEG:  14,
	},
	expr: {
		token.ADD: 15, token.SUB: 16, token.MULT: 17, token.DIV: 18, token.MOD: 19,
		token.Ident: 20, token.IntLit: 21,
	},
}

var isTerminal = func() map[token.Kind]bool {
	m := make(map[token.Kind]bool, len(terminals))
	for _, k := range terminals {
		m[k] = true
	}
	return m
}()

// expected lists the lookaheads that have a table entry for n.
func expected(n nonterminal) []token.Kind {
	row := parseTable[n]
	var ks []token.Kind
	for _, k := range terminals {
		if row[k] != 0 {
			ks = append(ks, k)
		}
	}
	return ks
}
