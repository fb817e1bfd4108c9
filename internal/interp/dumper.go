package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goiol/internal/symtab"
)

type dumper struct {
	m   *machine
	out io.Writer
}

func (dump dumper) dump(err error) {
	fmt.Fprintf(dump.out, "# IOL Dump\n")
	if err != nil {
		fmt.Fprintf(dump.out, "  halt: %v\n", err)
	}
	if pc := dump.m.pc; pc < len(dump.m.toks) {
		fmt.Fprintf(dump.out, "  at: #%v %v\n", pc, dump.m.toks[pc])
	}
	fmt.Fprintf(dump.out, "  task: %v\n", dump.m.task)
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.m.stack)
	dump.dumpTable()
}

func (dump dumper) dumpTable() {
	ents := dump.m.table.Entries()
	fmt.Fprintf(dump.out, "# Table (%v)\n", len(ents))
	width := 0
	for _, ent := range ents {
		if n := len(ent.Name); n > width {
			width = n
		}
	}
	for _, ent := range ents {
		val := ent.Value.String()
		if ent.Type == symtab.STR {
			val = fmt.Sprintf("%q", val)
		}
		fmt.Fprintf(dump.out, "  %v%v %v = %v\n",
			ent.Name, strings.Repeat(" ", width-len(ent.Name)), ent.Type, val)
	}
}
