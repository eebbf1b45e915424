package options

import (
	"testing"

	"github.com/cymbtoolchain/cymb/internal/diag"
)

func parse(t *testing.T, args ...string) (*Options, *diag.List) {
	t.Helper()
	diags := diag.New("<command-line>", 8)
	return Parse(args, diags), diags
}

func TestParseDefaults(t *testing.T) {
	opt, diags := parse(t, "main.c")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Diagnostics)
	}
	if opt.Standard != "c23" || opt.TabWidth != 8 {
		t.Fatalf("defaults = %q/%d, want c23/8", opt.Standard, opt.TabWidth)
	}
	if len(opt.Inputs) != 1 || opt.Inputs[0] != "main.c" {
		t.Fatalf("Inputs = %v, want [main.c]", opt.Inputs)
	}
}

func TestParseLongOptions(t *testing.T) {
	opt, diags := parse(t, "--output=a.out", "--standard=c17", "--tab-width=4", "--debug", "x.c")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Diagnostics)
	}
	if opt.Output != "a.out" || opt.Standard != "c17" || opt.TabWidth != 4 || !opt.Debug {
		t.Fatalf("got %+v", opt)
	}
}

func TestParseShortClusterLastTakesArgument(t *testing.T) {
	opt, diags := parse(t, "-go", "a.out", "x.c")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Diagnostics)
	}
	if !opt.Debug {
		t.Fatal("expected -g to set Debug")
	}
	if opt.Output != "a.out" {
		t.Fatalf("Output = %q, want a.out", opt.Output)
	}
}

func TestParseShortClusterArgumentMustBeLast(t *testing.T) {
	_, diags := parse(t, "-og", "a.out", "x.c")
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic: -o must be the last letter in a cluster")
	}
	if diags.Diagnostics[0].Kind != diag.InvalidArgument {
		t.Fatalf("kind = %s, want %s", diags.Diagnostics[0].Kind, diag.InvalidArgument)
	}
}

func TestParseRepeatedOutputLastWins(t *testing.T) {
	opt, diags := parse(t, "-o", "a.out", "-o", "b.out", "x.c")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Diagnostics)
	}
	if opt.Output != "b.out" {
		t.Fatalf("Output = %q, want b.out (last -o wins)", opt.Output)
	}

	opt, diags = parse(t, "main.c", "--output=a.out", "--output=-main.s-")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Diagnostics)
	}
	if opt.Output != "-main.s-" {
		t.Fatalf("Output = %q, want -main.s- (last --output wins)", opt.Output)
	}
}

func TestParseUnknownOption(t *testing.T) {
	_, diags := parse(t, "--bogus")
	if !diags.HasErrors() || diags.Diagnostics[0].Kind != diag.UnknownOption {
		t.Fatalf("expected unknown-option diagnostic, got %+v", diags.Diagnostics)
	}
}

func TestParseInvalidStandard(t *testing.T) {
	_, diags := parse(t, "--standard=c89")
	if !diags.HasErrors() || diags.Diagnostics[0].Kind != diag.InvalidArgument {
		t.Fatalf("expected invalid-argument diagnostic, got %+v", diags.Diagnostics)
	}
}

func TestParseDoubleDashStopsOptionParsing(t *testing.T) {
	opt, diags := parse(t, "--", "-o", "weird.c")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", diags.Diagnostics)
	}
	if len(opt.Inputs) != 2 || opt.Inputs[0] != "-o" || opt.Inputs[1] != "weird.c" {
		t.Fatalf("Inputs after -- = %v, want literal [-o weird.c]", opt.Inputs)
	}
}

func TestParseHelpAndVersionFlags(t *testing.T) {
	opt, diags := parse(t, "-h")
	if diags.HasErrors() || !opt.Help {
		t.Fatalf("got Help=%v diags=%+v, want Help=true no diagnostics", opt.Help, diags.Diagnostics)
	}
	opt, diags = parse(t, "--version")
	if diags.HasErrors() || !opt.Version {
		t.Fatalf("got Version=%v diags=%+v, want Version=true no diagnostics", opt.Version, diags.Diagnostics)
	}
}
