/* Command goiol compiles and runs IOL programs.

IOL is a small instructional language. A program is delimited by IOL and LOI,
declares INT and STR variables, reads them with BEG, writes with PRINT and
NEWLN, and assigns with INTO ... IS. Expressions are in prefix form:

	IOL
	  INT a IS 4 INT b IS 2
	  PRINT DIV a b NEWLN
	LOI

Three verbs make up the command line:

	goiol compile FILE...   report every diagnostic, write FILE.tkn
	goiol tokens FILE       show the token projection with line numbers
	goiol run FILE          compile, then execute if there were no errors

Compilation never stops early: lexical, syntax and type diagnostics are all
collected and reported in source order. Execution halts at the first runtime
fault (division by zero, non-numeric input for an INT, cancelled input).

Defaults come from IOL_* environment variables (IOL_JOBS, IOL_TOKEN_EXT,
IOL_NO_TOKENS, IOL_VARS, IOL_TIMES, IOL_TRACE, IOL_DUMP, IOL_HISTORY), and
flags override them.
*/
package main
