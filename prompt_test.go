package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_history(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	lp, err := newLinePrompter(path)
	require.NoError(t, err, "a missing history file is not an error")
	lp.ln.AppendHistory("42")
	require.NoError(t, lp.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "42\n", string(data))

	lp, err = newLinePrompter(path)
	require.NoError(t, err)
	require.NoError(t, lp.Close())
}

func TestLinePrompter_historyErrors(t *testing.T) {
	dir := t.TempDir()

	lp, err := newLinePrompter(dir)
	assert.ErrorContains(t, err, "reading history")
	require.NotNil(t, lp, "prompter stays usable without history")
	assert.Error(t, lp.Close(), "expected history write failure")
}
