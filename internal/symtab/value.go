package symtab

import (
	"fmt"
	"math/big"
)

// Type is the declared type of an IOL variable.
type Type int

const (
	INT Type = iota + 1
	STR
)

func (typ Type) String() string {
	switch typ {
	case INT:
		return "INT"
	case STR:
		return "STR"
	}
	return fmt.Sprintf("Type(%d)", int(typ))
}

// Value is a tagged IOL runtime value: an arbitrary precision integer or a
// string, never both.
type Value struct {
	Type Type
	Int  *big.Int
	Str  string
}

// IntValue returns an INT value holding n.
func IntValue(n int64) Value { return Value{Type: INT, Int: big.NewInt(n)} }

// BigValue returns an INT value holding a copy of n.
func BigValue(n *big.Int) Value { return Value{Type: INT, Int: new(big.Int).Set(n)} }

// StrValue returns a STR value holding s.
func StrValue(s string) Value { return Value{Type: STR, Str: s} }

// ParseInt parses a decimal literal into an INT value.
func ParseInt(lit string) (Value, error) {
	n, ok := new(big.Int).SetString(lit, 10)
	if !ok {
		return Value{}, fmt.Errorf("invalid integer literal %q", lit)
	}
	return Value{Type: INT, Int: n}, nil
}

// Zero returns the default value for typ: 0 or "".
func Zero(typ Type) Value {
	if typ == INT {
		return IntValue(0)
	}
	return StrValue("")
}

func (v Value) String() string {
	switch v.Type {
	case INT:
		if v.Int == nil {
			return "0"
		}
		return v.Int.String()
	case STR:
		return v.Str
	}
	return ""
}

// Clone returns a deep copy of v, so that later arithmetic on either side
// does not alias.
func (v Value) Clone() Value {
	if v.Int != nil {
		v.Int = new(big.Int).Set(v.Int)
	}
	return v
}

// Equal compares type and content.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	if v.Type == INT {
		return v.String() == other.String()
	}
	return v.Str == other.Str
}
