// Package fileinput loads named IOL sources and locates lines within them.
package fileinput

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Location names a line in a Source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Source is the full text of one named input.
type Source struct {
	Name string
	Text string
}

// At returns the location of line n.
func (src Source) At(n int) Location { return Location{src.Name, n} }

// Line returns the text of 1-based line n, or "" if out of range.
func (src Source) Line(n int) string {
	lines := strings.Split(src.Text, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[n-1], "\r")
}

// Read loads a Source from r, named after r's Name method when it has one.
func Read(r io.Reader) (Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("reading %v: %w", nameOf(r), err)
	}
	return Source{Name: nameOf(r), Text: string(b)}, nil
}

// Open loads the named file; "-" reads standard input.
func Open(name string) (Source, error) {
	if name == "-" {
		return Read(NamedReader("<stdin>", os.Stdin))
	}
	f, err := os.Open(name)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()
	return Read(f)
}

// NamedReader attaches a name to r for Read.
func NamedReader(name string, r io.Reader) io.Reader { return namedReader{r, name} }

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
