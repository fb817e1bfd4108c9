package interp

import (
	"io"

	"github.com/jcorbin/goiol/internal/flushio"
)

// Option customizes an Execute call.
type Option interface{ apply(m *machine) }

var defaults = []Option{
	WithOutput(nil),
	WithPrompter(nil),
}

func (m *machine) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(m)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
}

// WithOutput sets the writer that output events are rendered to.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee renders output to w in addition to any prior output writer.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithPrompter sets the BEG input source; without one every BEG is cancelled.
func WithPrompter(p Prompter) Option { return prompterOption{p} }

// WithDump writes a dump of the machine to w when execution ends, whether
// normally or by fault.
func WithDump(w io.Writer) Option { return dumpOption{w} }

// WithLogf enables step tracing.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type prompterOption struct{ Prompter }
type dumpOption struct{ io.Writer }
type logfnOption func(mess string, args ...interface{})

func (o outputOption) apply(m *machine) {
	if m.out != nil {
		m.out.Flush()
	}
	m.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(m *machine) {
	m.out = flushio.Tee(m.out, flushio.NewWriteFlusher(o.Writer))
}

func (o prompterOption) apply(m *machine) {
	if o.Prompter == nil {
		m.prompter = Answers()
	} else {
		m.prompter = o.Prompter
	}
}

func (o dumpOption) apply(m *machine)      { m.dumpTo = o.Writer }
func (logfn logfnOption) apply(m *machine) { m.logfn = logfn }
