// Command cymb is the compiler-frontend driver: reader → lexer → parser,
// per SPEC_FULL.md §3.
//
// Grounded on the teacher's main.go (flag handling, early exit on -version/
// -help, one file per invocation), regrown around internal/options' short-
// option-clustering parser since the teacher's flag.FlagSet cannot express
// spec.md §6's `-go` clustering or `--tab-width=N` `=`-joined values.
package main

import (
	"fmt"
	"os"

	"github.com/cymbtoolchain/cymb/internal/arena"
	"github.com/cymbtoolchain/cymb/internal/buildinfo"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/diagprint"
	"github.com/cymbtoolchain/cymb/internal/lexer"
	"github.com/cymbtoolchain/cymb/internal/options"
	"github.com/cymbtoolchain/cymb/internal/parser"
	"github.com/cymbtoolchain/cymb/internal/result"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	optDiags := diag.New("<command-line>", 8)
	opt := options.Parse(args, optDiags)

	if opt.Help {
		fmt.Println(usage())
		return 0
	}
	if opt.Version {
		fmt.Println(buildinfo.String("cymb"))
		return 0
	}
	if optDiags.HasErrors() {
		diagprint.All(os.Stderr, optDiags)
		return 1
	}
	if len(opt.Inputs) == 0 {
		fmt.Fprintln(os.Stderr, "cymb: no input files")
		return 1
	}

	failed := false
	for _, path := range opt.Inputs {
		if !compileFile(path, opt.TabWidth) {
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

// compileFile runs one input file through the lexer and parser, printing
// any diagnostics, and reports whether it succeeded.
func compileFile(path string, tabWidth int) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cymb: %s: %v\n", path, err)
		return false
	}

	diags := diag.New(path, tabWidth)
	toks, ok := lexer.Lex(string(src), tabWidth, diags)
	if !ok {
		diagprint.All(os.Stderr, diags)
		return false
	}

	a := arena.New()
	mark := a.Mark()
	defer a.Release(mark)

	_, outcome := parser.ParseProgram(toks, diags, a)
	if diags.HasErrors() {
		diagprint.All(os.Stderr, diags)
		return false
	}
	return outcome == result.Match
}

func usage() string {
	return `usage: cymb [options] file...
  -o FILE, --output=FILE   output path (exactly one allowed)
  -g, --debug              debug-mode switch
  --standard=cXX           select C standard (c90,c95,c99,c11,c17,c23)
  --tab-width=N            tab width for diagnostics (1-100)
  -h, --help               show this help
  -v, --version            show version information
  --                       end of option parsing`
}
