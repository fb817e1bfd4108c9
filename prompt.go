package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/peterh/liner"

	"github.com/jcorbin/goiol/internal/interp"
)

// linePrompter answers BEG from the terminal through liner.
type linePrompter struct {
	ln      *liner.State
	history string
}

// newLinePrompter always returns a usable prompter; the error reports a
// history file that exists but could not be loaded.
func newLinePrompter(history string) (*linePrompter, error) {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	lp := &linePrompter{ln: ln, history: history}
	if history == "" {
		return lp, nil
	}
	f, err := os.Open(history)
	if errors.Is(err, fs.ErrNotExist) {
		return lp, nil
	} else if err != nil {
		return lp, err
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil {
		return lp, fmt.Errorf("reading history %v: %w", history, err)
	}
	return lp, nil
}

func (lp *linePrompter) Prompt(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ans, err := lp.ln.Prompt(fmt.Sprintf("Input for %v: ", name))
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", interp.ErrInputCancelled
	} else if err != nil {
		return "", err
	}
	if ans != "" {
		lp.ln.AppendHistory(ans)
	}
	return ans, nil
}

// Close restores the terminal and saves the input history, if any.
func (lp *linePrompter) Close() error {
	return errors.Join(lp.saveHistory(), lp.ln.Close())
}

func (lp *linePrompter) saveHistory() error {
	if lp.history == "" {
		return nil
	}
	f, err := os.Create(lp.history)
	if err != nil {
		return err
	}
	if _, err := lp.ln.WriteHistory(f); err != nil {
		f.Close()
		return fmt.Errorf("writing history %v: %w", lp.history, err)
	}
	return f.Close()
}
