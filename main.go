package main

import (
	"context"
	"io"
	"os"

	"github.com/jcorbin/goiol/internal/interp"
	"github.com/jcorbin/goiol/internal/logio"
)

func main() {
	log := logio.New(os.Stderr)
	a := &app{
		cfg:    LoadConfig(),
		log:    log,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	log.ErrorIf(a.rootCmd().ExecuteContext(context.Background()))
	os.Exit(log.ExitCode())
}

type app struct {
	cfg    Config
	log    *logio.Logger
	stdout io.Writer
	stderr io.Writer

	// prompter answers BEG; a terminal line editor is used when nil
	prompter interp.Prompter
}
