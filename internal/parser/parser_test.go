package parser

import (
	"testing"

	"github.com/cymbtoolchain/cymb/internal/arena"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/lexer"
	"github.com/cymbtoolchain/cymb/internal/result"
)

func parseSource(t *testing.T, src string) (*diag.List, result.Outcome) {
	t.Helper()
	diags := diag.New("<test>", 8)
	toks, ok := lexer.Lex(src, 8, diags)
	if !ok {
		t.Fatalf("lexing failed: %+v", diags.Diagnostics)
	}
	a := arena.New()
	prog, outcome := ParseProgram(toks, diags, a)
	if prog == nil {
		t.Fatal("ParseProgram returned a nil program")
	}
	return diags, outcome
}

func TestParseSimpleFunction(t *testing.T) {
	diags, outcome := parseSource(t, "int main(void) { return 0; }")
	if outcome != result.Match {
		t.Fatalf("outcome = %s, want match; diagnostics: %+v", outcome, diags.Diagnostics)
	}
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Diagnostics)
	}
}

func TestParseFunctionWithParametersAndWhile(t *testing.T) {
	src := `int add(int a, int b) {
		int total = 0;
		while (a) {
			total = total + b;
		}
		return total;
	}`
	diags, outcome := parseSource(t, src)
	if outcome != result.Match {
		t.Fatalf("outcome = %s, want match; diagnostics: %+v", outcome, diags.Diagnostics)
	}
}

func TestParseMultipleFunctions(t *testing.T) {
	src := "int a(void) { return 1; } int b(void) { return 2; }"
	diags := diag.New("<test>", 8)
	toks, ok := lexer.Lex(src, 8, diags)
	if !ok {
		t.Fatalf("lexing failed: %+v", diags.Diagnostics)
	}
	a := arena.New()
	prog, outcome := ParseProgram(toks, diags, a)
	if outcome != result.Match {
		t.Fatalf("outcome = %s, want match; diagnostics: %+v", outcome, diags.Diagnostics)
	}
	if len(prog.Functions) != 2 {
		t.Fatalf("got %d functions, want 2", len(prog.Functions))
	}
}

func TestParseMissingSemicolonIsInvalid(t *testing.T) {
	_, outcome := parseSource(t, "int main(void) { return 0 }")
	if outcome != result.Invalid {
		t.Fatalf("outcome = %s, want invalid for a missing semicolon", outcome)
	}
}

func TestParseUnexpectedTopLevelTokenIsInvalid(t *testing.T) {
	_, outcome := parseSource(t, "int main(void) { return 0; } }")
	if outcome != result.Invalid {
		t.Fatalf("outcome = %s, want invalid for a stray top-level token", outcome)
	}
}

func TestParseArenaRollbackOnFailedSpeculativeFunction(t *testing.T) {
	// "int;" looks like the start of a declaration/type but fails to
	// produce a valid function; ParseProgram must still return without
	// panicking and report Invalid rather than silently accepting garbage.
	diags := diag.New("<test>", 8)
	toks, _ := lexer.Lex("int;", 8, diags)
	a := arena.New()
	before := a.Mark()
	_, outcome := ParseProgram(toks, diags, a)
	if outcome != result.Invalid {
		t.Fatalf("outcome = %s, want invalid", outcome)
	}
	// Only the Program node survives: the type node allocated by the failed
	// function attempt was released when it rolled back.
	if got, want := a.Len(), int(before)+1; got != want {
		t.Fatalf("arena holds %d allocations, want %d (Program only)", got, want)
	}
}
