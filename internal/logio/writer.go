package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that passes every completed line to Logf; a final
// partial line is passed on Sync or Close.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p and logs any completed lines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.logLines(false)
	return len(p), nil
}

// Sync logs whatever remains buffered.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.logLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error { return lw.Sync() }

func (lw *Writer) logLines(all bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		i := bytes.IndexByte(line, '\n')
		if i < 0 && !all {
			return
		}
		if i < 0 {
			i = len(line)
		}
		lw.Logf("%s", line[:i])
		lw.buf.Next(i)
		if lw.buf.Len() > 0 {
			lw.buf.Next(1)
		}
	}
}
