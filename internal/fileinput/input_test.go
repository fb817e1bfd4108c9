package fileinput

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	src, err := Read(NamedReader("hello.iol", strings.NewReader("IOL\r\n  PRINT 1\nLOI")))
	require.NoError(t, err)
	assert.Equal(t, "hello.iol", src.Name)
	assert.Equal(t, "  PRINT 1", src.Line(2))
	assert.Equal(t, "IOL", src.Line(1))
	assert.Equal(t, "", src.Line(4))
	assert.Equal(t, "hello.iol:3", src.At(3).String())

	src, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "<unnamed *strings.Reader>", src.Name)
}

func TestOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "prog.iol")
	require.NoError(t, os.WriteFile(name, []byte("IOL LOI\n"), 0o644))

	src, err := Open(name)
	require.NoError(t, err)
	assert.Equal(t, name, src.Name)
	assert.Equal(t, "IOL LOI\n", src.Text)

	_, err = Open(filepath.Join(t.TempDir(), "missing.iol"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
