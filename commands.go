package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/goiol/internal/compiler"
	"github.com/jcorbin/goiol/internal/diag"
	"github.com/jcorbin/goiol/internal/fileinput"
	"github.com/jcorbin/goiol/internal/interp"
)

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "goiol",
		Short:         "Compile and run IOL programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.cfg.TokenExt, "token-ext", a.cfg.TokenExt, "extension of token projection files")
	root.AddCommand(a.compileCmd(), a.tokensCmd(), a.runCmd())
	return root
}

func (a *app) compileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile FILE...",
		Short: "Report diagnostics and write token projections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.compileAll(cmd.Context(), args)
			for _, res := range results {
				if res != nil {
					a.report(res)
				}
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&a.cfg.Jobs, "jobs", "j", a.cfg.Jobs, "number of files to compile at once")
	cmd.Flags().BoolVar(&a.cfg.NoTokens, "no-tokens", a.cfg.NoTokens, "do not write token projection files")
	cmd.Flags().BoolVar(&a.cfg.Vars, "vars", a.cfg.Vars, "print the variable table")
	cmd.Flags().BoolVar(&a.cfg.Trace, "trace", a.cfg.Trace, "trace parser steps")
	return cmd
}

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Show the token projection of a source or " + a.cfg.TokenExt + " file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := fileinput.Open(args[0])
			if err != nil {
				return err
			}
			if filepath.Ext(src.Name) != a.cfg.TokenExt {
				res := compiler.Compile(src.Name, src.Text)
				a.listing(res.Projection())
				return nil
			}

			a.listing(src.Text)
			diags, err := compiler.CheckProjection(src.Text)
			if err != nil {
				return fmt.Errorf("%v: %w", src.Name, err)
			}
			for _, d := range diags {
				a.log.Errorf("%v: %v error: %v", src.At(d.Line), d.Category(), d.Message)
			}
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Compile a program and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := fileinput.Open(args[0])
			if err != nil {
				return err
			}
			res := compiler.Compile(src.Name, src.Text, a.compileOpts()...)
			if !res.OK {
				a.diagnostics(res)
				return fmt.Errorf("%v: not executed: %w", res.Name, compiler.ErrNotCompiled)
			}
			return a.execute(cmd.Context(), res)
		},
	}
	cmd.Flags().IntVar(&a.cfg.Times, "times", a.cfg.Times, "number of times to run the compiled program")
	cmd.Flags().BoolVar(&a.cfg.Trace, "trace", a.cfg.Trace, "trace parser and execution steps")
	cmd.Flags().BoolVar(&a.cfg.Dump, "dump", a.cfg.Dump, "dump the working table when execution ends")
	cmd.Flags().StringVar(&a.cfg.History, "history", a.cfg.History, "file to keep input history in")
	return cmd
}

// compileAll compiles every named file, at most cfg.Jobs at once. Results are
// in argument order; a file that could not be read leaves a nil result, and
// does not stop the others.
func (a *app) compileAll(ctx context.Context, names []string) ([]*compiler.Result, error) {
	results := make([]*compiler.Result, len(names))
	errs := make([]error, len(names))
	opts := a.compileOpts()

	var eg errgroup.Group
	eg.SetLimit(a.cfg.Jobs)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			src, err := fileinput.Open(name)
			if err != nil {
				errs[i] = err
				return nil
			}
			res := compiler.Compile(src.Name, src.Text, opts...)
			results[i] = res
			if !a.cfg.NoTokens {
				errs[i] = os.WriteFile(a.tokenPath(name), []byte(res.Projection()), 0o644)
			}
			return nil
		})
	}
	_ = eg.Wait()
	return results, errors.Join(errs...)
}

func (a *app) compileOpts() []compiler.Option {
	if !a.cfg.Trace {
		return nil
	}
	return []compiler.Option{compiler.WithParseTrace(a.log.Leveledf("TRACE"))}
}

func (a *app) tokenPath(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + a.cfg.TokenExt
}

func (a *app) report(res *compiler.Result) {
	fmt.Fprintf(a.stdout, "Compiling %v\n", res.Name)
	a.diagnostics(res)

	summary := func(phase string, n int) {
		if n == 0 {
			fmt.Fprintf(a.stdout, "%v analysis completed without errors.\n", phase)
		} else {
			fmt.Fprintf(a.stdout, "%v analysis completed with %v error(s).\n", phase, n)
		}
	}
	summary("Lexical", res.Diagnostics.Count(diag.Lexical))
	summary("Syntax", res.Diagnostics.Count(diag.Syntax)+res.Diagnostics.Count(diag.Semantic))
	if !a.cfg.NoTokens {
		fmt.Fprintf(a.stdout, "Tokenized version of the source code saved in %v\n", a.tokenPath(res.Name))
	}

	if a.cfg.Vars {
		fmt.Fprintf(a.stdout, "Variables:\n")
		width := 0
		vars := res.Variables()
		for _, v := range vars {
			if len(v.Name) > width {
				width = len(v.Name)
			}
		}
		for _, v := range vars {
			fmt.Fprintf(a.stdout, "  %-*v %v\n", width, v.Name, v.Type)
		}
	}
}

func (a *app) diagnostics(res *compiler.Result) {
	src := fileinput.Source{Name: res.Name, Text: res.Source}
	for _, d := range res.Diagnostics {
		a.log.Errorf("%v: %v error: %v", src.At(d.Line), d.Category(), d.Message)
	}
}

func (a *app) listing(text string) {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		fmt.Fprintf(a.stdout, "%-3d | %s\n", i+1, strings.TrimSuffix(line, "\r"))
	}
}

func (a *app) execute(ctx context.Context, res *compiler.Result) error {
	prompter := a.prompter
	if prompter == nil {
		lp, err := newLinePrompter(a.cfg.History)
		a.warnIf(err)
		defer func() { a.warnIf(lp.Close()) }()
		prompter = lp
	}

	for i := 1; i <= a.cfg.Times; i++ {
		runID := uuid.New()
		opts := []interp.Option{
			interp.WithOutput(a.stdout),
			interp.WithPrompter(prompter),
		}
		if a.cfg.Trace {
			a.log.SetPrefix(fmt.Sprintf("[%v] ", runID))
			a.log.Printf("TRACE", "run %v of %v", i, a.cfg.Times)
			opts = append(opts, interp.WithLogf(a.log.Leveledf("TRACE")))
		}
		if a.cfg.Dump {
			opts = append(opts, interp.WithDump(a.stderr))
		}

		_, err := res.Execute(ctx, opts...)
		a.log.SetPrefix("")

		var fault *interp.Fault
		if errors.As(err, &fault) {
			fmt.Fprintf(a.stdout, "\nProgram terminated with error: %v\n", fault)
			a.log.Errorf("%v: %v", fileinput.Location{Name: res.Name, Line: fault.Line}, fault.Kind)
			return nil
		} else if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "\nProgram terminated successfully.\n")
	}
	return nil
}

func (a *app) warnIf(err error) {
	if err != nil {
		a.log.Printf("WARN", "%v", err)
	}
}
