package interp

import (
	"fmt"
	"strings"
)

// EventKind distinguishes output events.
type EventKind int

const (
	Text EventKind = iota + 1
	Newline
)

// Event is one unit of program output: a PRINTed text fragment or a NEWLN.
type Event struct {
	Kind EventKind
	Text string
}

func (ev Event) String() string {
	switch ev.Kind {
	case Text:
		return ev.Text
	case Newline:
		return "\n"
	}
	return fmt.Sprintf("Event(%d)", int(ev.Kind))
}

// Render concatenates events into the text a terminal would show.
func Render(events []Event) string {
	var sb strings.Builder
	for _, ev := range events {
		sb.WriteString(ev.String())
	}
	return sb.String()
}
