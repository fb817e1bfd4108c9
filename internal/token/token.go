// Package token defines the IOL token kinds and the word classifier.
package token

import "fmt"

// Kind identifies the category of a lexed word.
type Kind int

const (
	Invalid Kind = iota

	// Keywords
	IOL   // program start
	LOI   // program end
	INT   // integer declaration
	STR   // string declaration
	IS    // assignment / initializer
	INTO  // assignment target
	BEG   // input
	PRINT // output
	ADD   // prefix +
	SUB   // prefix -
	MULT  // prefix *
	DIV   // prefix / (truncating)
	MOD   // prefix %
	NEWLN // output newline

	IntLit // all-digit word
	Ident  // letter followed by letters or digits
	ErrLex // anything else
	End    // stream sentinel

	numKinds
)

var kindNames = [numKinds]string{
	Invalid: "INVALID",
	IOL:     "IOL",
	LOI:     "LOI",
	INT:     "INT",
	STR:     "STR",
	IS:      "IS",
	INTO:    "INTO",
	BEG:     "BEG",
	PRINT:   "PRINT",
	ADD:     "ADD",
	SUB:     "SUB",
	MULT:    "MULT",
	DIV:     "DIV",
	MOD:     "MOD",
	NEWLN:   "NEWLN",
	IntLit:  "INT_LIT",
	Ident:   "IDENT",
	ErrLex:  "ERR_LEX",
	End:     "END",
}

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the fixed keywords.
func (k Kind) IsKeyword() bool { return k >= IOL && k <= NEWLN }

// IsArith reports whether k is one of the prefix arithmetic operators.
func (k Kind) IsArith() bool { return k >= ADD && k <= MOD }

// IsType reports whether k begins a declaration.
func (k Kind) IsType() bool { return k == INT || k == STR }

// Lookup maps a kind name, as written in a token projection, back to its Kind.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

var byName map[string]Kind

func init() {
	byName = make(map[string]Kind, numKinds)
	for k := IOL; k < numKinds; k++ {
		byName[kindNames[k]] = k
	}
}

// Token is one classified source word.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int // 1-based source line
}

func (tok Token) String() string {
	switch tok.Kind {
	case Ident, IntLit, ErrLex:
		return fmt.Sprintf("%v(%q)", tok.Kind, tok.Lexeme)
	}
	return tok.Kind.String()
}
