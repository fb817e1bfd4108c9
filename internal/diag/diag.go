// Package diag collects the compile-time diagnostics of the IOL pipeline.
package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Category groups diagnostic kinds by the pipeline concern that owns them.
type Category int

const (
	Lexical Category = iota
	Syntax
	Semantic
)

func (c Category) String() string {
	switch c {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Semantic:
		return "semantic"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Kind is the specific diagnostic raised.
type Kind int

const (
	UnknownWord Kind = iota

	DuplicateDeclaration
	UndefinedVariable
	TypeMismatch

	UnexpectedToken
	MissingTerminator
	TrailingTokens
)

var kindNames = [...]string{
	UnknownWord:          "unknown word",
	DuplicateDeclaration: "duplicate declaration",
	UndefinedVariable:    "undefined variable",
	TypeMismatch:         "type mismatch",
	UnexpectedToken:      "unexpected token",
	MissingTerminator:    "missing terminator",
	TrailingTokens:       "trailing tokens after terminator",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Category returns the category k belongs to.
func (k Kind) Category() Category {
	switch k {
	case UnknownWord:
		return Lexical
	case DuplicateDeclaration, UndefinedVariable, TypeMismatch:
		return Semantic
	}
	return Syntax
}

// Diagnostic is one compile-time finding.
type Diagnostic struct {
	Line    int  // 1-based source line
	Pos     int  // index of the offending token in the stream
	Kind    Kind // what went wrong
	Message string
}

// Category returns the category of the diagnostic's kind.
func (d Diagnostic) Category() Category { return d.Kind.Category() }

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %v: %v error: %v", d.Line, d.Category(), d.Message)
}

// Error makes a Diagnostic usable as an error value.
func (d Diagnostic) Error() string { return d.String() }

// Newf builds a diagnostic with a formatted message.
func Newf(line, pos int, kind Kind, mess string, args ...interface{}) Diagnostic {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	return Diagnostic{Line: line, Pos: pos, Kind: kind, Message: mess}
}

// List is an ordered diagnostic collection.
type List []Diagnostic

// Addf appends a new diagnostic.
func (l *List) Addf(line, pos int, kind Kind, mess string, args ...interface{}) {
	*l = append(*l, Newf(line, pos, kind, mess, args...))
}

// Merge combines lists into one ordered by line, then token position;
// diagnostics at the same place keep their input order.
func Merge(lists ...List) List {
	var all List
	for _, l := range lists {
		all = append(all, l...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Line != all[j].Line {
			return all[i].Line < all[j].Line
		}
		return all[i].Pos < all[j].Pos
	})
	return all
}

// Count returns how many diagnostics fall in category c.
func (l List) Count(c Category) (n int) {
	for _, d := range l {
		if d.Category() == c {
			n++
		}
	}
	return n
}

// Kinds returns the kinds in list order, mostly for tests.
func (l List) Kinds() []Kind {
	kinds := make([]Kind, len(l))
	for i, d := range l {
		kinds[i] = d.Kind
	}
	return kinds
}

// Err returns nil for an empty list, or an error describing every entry.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return listError(l)
}

type listError List

func (le listError) Error() string {
	if len(le) == 1 {
		return le[0].String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v errors:", len(le))
	for _, d := range le {
		sb.WriteString("\n\t")
		sb.WriteString(d.String())
	}
	return sb.String()
}
