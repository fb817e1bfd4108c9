package interp

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// halt stops the machine: output is flushed, the reason traced, and a
// haltError panic unwinds to isolate.
func (m *machine) halt(err error) {
	func() {
		defer func() { recover() }()
		if ferr := m.out.Flush(); err == nil {
			err = ferr
		}
	}()
	func() {
		defer func() { recover() }()
		m.logf("halt: %v", err)
	}()
	panic(haltError{err})
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }

// isolate runs f on its own goroutine, turning a halt back into its error and
// any other panic or runtime.Goexit into a panicError.
func isolate(name string, f func() error) (err error) {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			select {
			case errch <- panicError{name: name, e: "runtime.Goexit called"}:
			default:
			}
		}()
		defer func() {
			if e := recover(); e != nil {
				errch <- panicError{name: name, e: e, stack: debug.Stack()}
			}
		}()
		errch <- f()
	}()
	err = <-errch
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	return err
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

func (pe panicError) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	if c == 'v' && f.Flag('+') && len(pe.stack) > 0 {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

// PanicStack returns the goroutine stack captured when err was recovered from
// an unexpected panic, or "" otherwise.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
