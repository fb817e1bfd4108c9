// Package symtab implements the single flat IOL symbol table.
//
// There is no scoping: a name is visible from its declaring token to the end
// of the file. Entries keep declaration order.
package symtab

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when declaring a name that already exists.
var ErrDuplicate = errors.New("duplicate declaration")

// Entry is one declared variable.
type Entry struct {
	Name  string
	Type  Type
	Value Value
	Pos   int // token index of the declared identifier
	Line  int
}

// Table maps identifiers to entries in declaration order.
type Table struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty table.
func New() *Table { return &Table{} }

// Len returns the number of declared names.
func (tab *Table) Len() int {
	if tab == nil {
		return 0
	}
	return len(tab.entries)
}

// Declare registers name with typ and its zero value.
func (tab *Table) Declare(name string, typ Type, pos, line int) error {
	if _, defined := tab.index[name]; defined {
		return fmt.Errorf("%w of %q", ErrDuplicate, name)
	}
	if tab.index == nil {
		tab.index = make(map[string]int)
	}
	tab.index[name] = len(tab.entries)
	tab.entries = append(tab.entries, Entry{
		Name:  name,
		Type:  typ,
		Value: Zero(typ),
		Pos:   pos,
		Line:  line,
	})
	return nil
}

// Lookup returns the entry for name.
func (tab *Table) Lookup(name string) (Entry, bool) {
	if tab == nil {
		return Entry{}, false
	}
	i, defined := tab.index[name]
	if !defined {
		return Entry{}, false
	}
	return tab.entries[i], true
}

// Resolve returns the entry for name only if it was declared at or before
// token position pos.
func (tab *Table) Resolve(name string, pos int) (Entry, bool) {
	ent, ok := tab.Lookup(name)
	if !ok || ent.Pos > pos {
		return Entry{}, false
	}
	return ent, true
}

// Get returns the current value of name.
func (tab *Table) Get(name string) (Value, bool) {
	ent, ok := tab.Lookup(name)
	return ent.Value, ok
}

// Set stores val into name; the declared type is not rechecked.
func (tab *Table) Set(name string, val Value) bool {
	i, defined := tab.index[name]
	if !defined {
		return false
	}
	tab.entries[i].Value = val
	return true
}

// Entries returns a copy of every entry, in declaration order.
func (tab *Table) Entries() []Entry {
	if tab == nil {
		return nil
	}
	ents := make([]Entry, len(tab.entries))
	copy(ents, tab.entries)
	return ents
}

// Clone returns a deep copy, values included.
func (tab *Table) Clone() *Table {
	if tab == nil {
		return New()
	}
	clone := &Table{
		entries: make([]Entry, len(tab.entries)),
		index:   make(map[string]int, len(tab.index)),
	}
	for i, ent := range tab.entries {
		ent.Value = ent.Value.Clone()
		clone.entries[i] = ent
		clone.index[ent.Name] = i
	}
	return clone
}
