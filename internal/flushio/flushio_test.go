package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWriter struct {
	strings.Builder
	writes int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	cw.writes++
	return cw.Builder.Write(p)
}

func TestNewWriteFlusher(t *testing.T) {
	assert.Equal(t, Discard, NewWriteFlusher(nil))
	assert.Equal(t, Discard, NewWriteFlusher(io.Discard))

	var buf bytes.Buffer
	wf := NewWriteFlusher(&buf)
	io.WriteString(wf, "hello")
	assert.Equal(t, "hello", buf.String(), "buffers are written through")

	bw := bufio.NewWriter(&buf)
	assert.Same(t, bw, NewWriteFlusher(bw))
}

func TestNewWriteFlusher_buffered(t *testing.T) {
	var cw countingWriter
	wf := NewWriteFlusher(struct{ io.Writer }{&cw})
	io.WriteString(wf, "4")
	io.WriteString(wf, "2")
	assert.Equal(t, 0, cw.writes, "expected buffered writes")
	require.NoError(t, wf.Flush())
	assert.Equal(t, "42", cw.String())
}

func TestTee(t *testing.T) {
	var a, b strings.Builder
	wf := Tee(NewWriteFlusher(&a), nil, Tee(NewWriteFlusher(&b)))
	_, err := io.WriteString(wf, "PRINT")
	require.NoError(t, err)
	require.NoError(t, wf.Flush())
	assert.Equal(t, "PRINT", a.String())
	assert.Equal(t, "PRINT", b.String())

	assert.Equal(t, Discard, Tee())
	assert.Equal(t, Discard, Tee(nil, nil))
}
