package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goiol/internal/interp"
	"github.com/jcorbin/goiol/internal/logio"
)

type testApp struct {
	*app
	out strings.Builder
	err strings.Builder
}

func newTestApp(t *testing.T, answers ...string) *testApp {
	ta := &testApp{}
	ta.app = &app{
		cfg: Config{
			Jobs:     2,
			TokenExt: ".tkn",
			Times:    1,
		},
		stdout:   &ta.out,
		stderr:   &ta.err,
		prompter: interp.Answers(answers...),
	}
	ta.log = logio.New(&ta.err)
	return ta
}

func (ta *testApp) run(t *testing.T, args ...string) error {
	cmd := ta.rootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	t.Logf("stdout:\n%v", ta.out.String())
	t.Logf("stderr:\n%v", ta.err.String())
	return err
}

func writeFile(t *testing.T, name string, lines ...string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestConfig(t *testing.T) {
	t.Setenv("IOL_JOBS", "8")
	t.Setenv("IOL_TRACE", "true")
	t.Setenv("IOL_TIMES", "nope")
	cfg := LoadConfig()
	assert.Equal(t, 8, cfg.Jobs)
	assert.True(t, cfg.Trace)
	assert.Equal(t, 1, cfg.Times, "unparsable values fall back to defaults")
	assert.Equal(t, ".tkn", cfg.TokenExt)
	assert.NoError(t, cfg.Validate())

	cfg.Jobs = 0
	assert.Error(t, cfg.Validate())
	cfg.Jobs = 1
	cfg.TokenExt = "tkn"
	assert.Error(t, cfg.Validate())
}

func TestCompileCmd(t *testing.T) {
	good := writeFile(t, "good.iol", `IOL`, `  INT a IS 4 STR name`, `  PRINT a`, `LOI`)
	bad := writeFile(t, "bad.iol", `IOL`, `  PRINT x!`)

	ta := newTestApp(t)
	ta.cfg.Vars = true
	require.NoError(t, ta.run(t, "compile", good, bad))

	tkn, err := os.ReadFile(strings.TrimSuffix(good, ".iol") + ".tkn")
	require.NoError(t, err)
	assert.Equal(t, "IOL\n  INT IDENT IS INT_LIT STR IDENT\n  PRINT IDENT\nLOI\n", string(tkn))

	out := ta.out.String()
	assert.Contains(t, out, "Compiling "+good+"\nLexical analysis completed without errors.\nSyntax analysis completed without errors.\n")
	assert.Contains(t, out, "Variables:\n  a    INT\n  name STR\n")
	assert.Contains(t, out, "Compiling "+bad+"\nLexical analysis completed with 1 error(s).\nSyntax analysis completed with 2 error(s).\n")

	assert.Contains(t, ta.err.String(), "ERROR: "+bad+`:2: lexical error: unknown word "x!"`)
	assert.Contains(t, ta.err.String(), "ERROR: "+bad+":2: syntax error: expected LOI at end of file")
	assert.Equal(t, 1, ta.log.ExitCode())
}

func TestCompileCmd_missingFile(t *testing.T) {
	first := writeFile(t, "a.iol", `IOL PRINT 1 LOI`)
	missing := filepath.Join(t.TempDir(), "missing.iol")
	last := writeFile(t, "b.iol", `IOL PRINT y LOI`)

	ta := newTestApp(t)
	ta.cfg.Jobs = 1
	err := ta.run(t, "compile", first, missing, last)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	out := ta.out.String()
	assert.Contains(t, out, "Compiling "+first+"\n")
	assert.Contains(t, out, "Compiling "+last+"\nLexical analysis completed without errors.\nSyntax analysis completed with ")
	assert.NotContains(t, out, "Compiling "+missing)
	assert.Contains(t, ta.err.String(), "ERROR: "+last+`:1: semantic error: undefined variable "y"`)

	for _, name := range []string{first, last} {
		_, err := os.Stat(strings.TrimSuffix(name, ".iol") + ".tkn")
		assert.NoError(t, err, "expected token projection for %v", name)
	}
}

func TestCompileCmd_trace(t *testing.T) {
	src := writeFile(t, "t.iol", `IOL PRINT 1 LOI`)

	ta := newTestApp(t)
	require.NoError(t, ta.run(t, "compile", "--trace", "--no-tokens", src))
	assert.Contains(t, ta.err.String(), "TRACE: parse ")
	assert.Contains(t, ta.err.String(), "TRACE: apply ")
}

func TestTokensCmd(t *testing.T) {
	src := writeFile(t, "p.iol", `IOL`, `INT a`, `LOI`)

	ta := newTestApp(t)
	require.NoError(t, ta.run(t, "tokens", src))
	assert.Equal(t, "1   | IOL\n2   | INT IDENT\n3   | LOI\n", ta.out.String())

	tkn := writeFile(t, "p.tkn", `IOL`, `PRINT`, `LOI`)
	ta = newTestApp(t)
	require.NoError(t, ta.run(t, "tokens", tkn))
	assert.Contains(t, ta.err.String(), tkn+":3: syntax error: ")
	assert.Equal(t, 1, ta.log.ExitCode())
}

func TestRunCmd(t *testing.T) {
	src := writeFile(t, "greet.iol",
		`IOL`,
		`  STR who INT n`,
		`  BEG who BEG n`,
		`  PRINT who NEWLN`,
		`  PRINT MULT n n`,
		`LOI`)

	ta := newTestApp(t, "world", "12")
	require.NoError(t, ta.run(t, "run", src))
	assert.Equal(t, "world\n144\nProgram terminated successfully.\n", ta.out.String())
	assert.Equal(t, 0, ta.log.ExitCode())
}

func TestRunCmd_fault(t *testing.T) {
	src := writeFile(t, "div.iol", `IOL INT a IS 4`, `PRINT a`, `PRINT DIV a 0`, `LOI`)

	ta := newTestApp(t)
	ta.cfg.Dump = true
	require.NoError(t, ta.run(t, "run", "--times", "3", src))
	assert.Equal(t, "4\nProgram terminated with error: Division by zero on line 3.\n", ta.out.String())
	assert.Contains(t, ta.err.String(), "# IOL Dump")
	assert.Contains(t, ta.err.String(), "ERROR: "+src+":3: divisionByZero")
	assert.Equal(t, 1, ta.log.ExitCode())
}

func TestRunCmd_notCompiled(t *testing.T) {
	src := writeFile(t, "bad.iol", `IOL INT a STR b INTO a IS b LOI`)

	ta := newTestApp(t)
	err := ta.run(t, "run", src)
	assert.ErrorContains(t, err, "not executed")
	assert.Contains(t, ta.err.String(), `semantic error: type mismatch in "INTO a IS b": a is INT`)
	assert.Empty(t, ta.out.String())
}

func TestRunCmd_trace(t *testing.T) {
	src := writeFile(t, "t.iol", `IOL PRINT ADD 1 2 LOI`)

	ta := newTestApp(t)
	require.NoError(t, ta.run(t, "run", "--trace", "--times", "2", src))
	assert.Equal(t, strings.Repeat("3\nProgram terminated successfully.\n", 2), ta.out.String())
	assert.Contains(t, ta.err.String(), "run 2 of 2")
	assert.Contains(t, ta.err.String(), "reduce ADD 1 2 = 3")
	assert.Contains(t, ta.err.String(), "TRACE: parse ")
}
