package interp

import (
	"errors"
	"fmt"
)

// Runtime fault sentinels; a *Fault matches its kind's sentinel under
// errors.Is.
var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrTypeMismatchOnInput = errors.New("type mismatch on input")
	ErrInputCancelled      = errors.New("input cancelled")
)

// FaultKind enumerates the fatal runtime faults.
type FaultKind int

const (
	DivisionByZero FaultKind = iota + 1
	TypeMismatchOnInput
	InputCancelled
)

func (k FaultKind) String() string {
	switch k {
	case DivisionByZero:
		return "divisionByZero"
	case TypeMismatchOnInput:
		return "typeMismatchOnInput"
	case InputCancelled:
		return "inputCancelled"
	}
	return fmt.Sprintf("FaultKind(%d)", int(k))
}

func (k FaultKind) sentinel() error {
	switch k {
	case DivisionByZero:
		return ErrDivisionByZero
	case TypeMismatchOnInput:
		return ErrTypeMismatchOnInput
	case InputCancelled:
		return ErrInputCancelled
	}
	return nil
}

// Fault is a fatal runtime fault. Execution stops at the first one; output
// already emitted and assignments already made stand.
type Fault struct {
	Kind  FaultKind
	Line  int
	Name  string // variable involved, if any
	Input string // rejected input for TypeMismatchOnInput
}

func (f *Fault) Error() string {
	switch f.Kind {
	case DivisionByZero:
		return fmt.Sprintf("Division by zero on line %v.", f.Line)
	case TypeMismatchOnInput:
		return fmt.Sprintf("%v expected an INT, got STR instead.", f.Name)
	case InputCancelled:
		return "User cancelled the input operation."
	}
	return fmt.Sprintf("%v on line %v", f.Kind, f.Line)
}

// Is matches the sentinel of the fault's kind.
func (f *Fault) Is(target error) bool {
	return target != nil && target == f.Kind.sentinel()
}
