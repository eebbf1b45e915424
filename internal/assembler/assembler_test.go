package assembler

import (
	"testing"

	"github.com/cymbtoolchain/cymb/internal/arena"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/disassembler"
)

func assemble(t *testing.T, src string) ([]uint32, *diag.List, bool) {
	t.Helper()
	diags := diag.New("<test>", 8)
	a := arena.New()
	words, ok := Assemble(src, 8, diags, a)
	return words, diags, ok
}

func TestAssembleShiftedRegisterForm(t *testing.T) {
	words, diags, ok := assemble(t, "ADD X0, X1, X2")
	if !ok {
		t.Fatalf("assemble failed: %+v", diags.Diagnostics)
	}
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1", len(words))
	}
	const want = 0x8B020020
	if words[0] != want {
		t.Fatalf("word = %#08x, want %#08x", words[0], want)
	}

	ins, ok := disassembler.Decode(words[0], 0)
	if !ok {
		t.Fatalf("disassembler could not decode %#08x", words[0])
	}
	if ins.Mnemonic != "ADD" {
		t.Fatalf("decoded mnemonic = %q, want ADD", ins.Mnemonic)
	}
}

func TestAssembleImmediateForm(t *testing.T) {
	words, diags, ok := assemble(t, "ADD X0, X1, #5")
	if !ok {
		t.Fatalf("assemble failed: %+v", diags.Diagnostics)
	}
	const want = 0x91001420
	if words[0] != want {
		t.Fatalf("word = %#08x, want %#08x", words[0], want)
	}
}

func TestAssembleImmediateFallsThroughToRegisterForm(t *testing.T) {
	// The immediate-form descriptor for ADD is tried first; "X2" is not a
	// valid immediate, so the assembler must roll back and fall through to
	// the shifted-register descriptor rather than reporting an error.
	words, diags, ok := assemble(t, "ADD X0, X1, X2")
	if !ok {
		t.Fatalf("fallthrough to register form failed: %+v", diags.Diagnostics)
	}
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1", len(words))
	}
}

func TestAssembleUnknownInstructionReportsDiagnostic(t *testing.T) {
	_, diags, ok := assemble(t, "BOGUS X0, X1")
	if ok {
		t.Fatal("assemble succeeded for an unknown mnemonic")
	}
	if diags.Len() == 0 || diags.Diagnostics[0].Kind != diag.UnknownInstruction {
		t.Fatalf("got diagnostics %+v, want a leading UnknownInstruction", diags.Diagnostics)
	}
}

func TestAssembleDuplicateLabelReportsDiagnostic(t *testing.T) {
	src := "loop:\n  ADD X0, X1, X2\nloop:\n  ADD X0, X1, X2\n"
	_, diags, ok := assemble(t, src)
	if ok {
		t.Fatal("assemble succeeded despite a duplicate label")
	}
	found := false
	for _, d := range diags.Diagnostics {
		if d.Kind == diag.DuplicateLabel {
			found = true
		}
	}
	if !found {
		t.Fatalf("no DuplicateLabel diagnostic among %+v", diags.Diagnostics)
	}
}

func TestAssembleLabelReference(t *testing.T) {
	// ADR X0, target — target is defined two instructions (8 bytes) ahead.
	src := "ADR X0, target\nADD X1, X1, X1\ntarget:\nADD X2, X2, X2\n"
	words, diags, ok := assemble(t, src)
	if !ok {
		t.Fatalf("assemble failed: %+v", diags.Diagnostics)
	}
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3", len(words))
	}
	// disp = 8, immlo = disp&0x3 = 0, immhi = (disp>>2)&0x7FFFF = 2.
	const wantADR = 0x10000000 | (2 << 5)
	if words[0] != wantADR {
		t.Fatalf("ADR word = %#08x, want %#08x", words[0], wantADR)
	}
}

func TestAssembleMismatchedRegisterWidthIsInvalid(t *testing.T) {
	_, diags, ok := assemble(t, "ADD X0, X1, W2")
	if ok {
		t.Fatal("assemble succeeded despite mismatched register widths")
	}
	found := false
	for _, d := range diags.Diagnostics {
		if d.Kind == diag.InvalidRegisterWidth {
			found = true
		}
	}
	if !found {
		t.Fatalf("no InvalidRegisterWidth diagnostic among %+v", diags.Diagnostics)
	}
}
