package lexer

import (
	"testing"

	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/token"
)

func kinds(t *testing.T, toks token.List) []token.Kind {
	t.Helper()
	var ks []token.Kind
	for i := 0; i < toks.Len(); i++ {
		ks = append(ks, toks.At(i).Kind)
	}
	return ks
}

func TestLexSimpleDeclaration(t *testing.T) {
	diags := diag.New("<test>", 8)
	toks, ok := Lex("int x = 1;", 8, diags)
	if !ok {
		t.Fatalf("Lex reported invalid, diagnostics: %+v", diags.Diagnostics)
	}
	got := kinds(t, toks)
	want := []token.Kind{token.KwInt, token.Identifier, token.Equal, token.IntegerConstant, token.Semicolon, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexKeywordVsIdentifier(t *testing.T) {
	diags := diag.New("<test>", 8)
	toks, ok := Lex("return returnValue;", 8, diags)
	if !ok {
		t.Fatalf("Lex reported invalid, diagnostics: %+v", diags.Diagnostics)
	}
	if toks.At(0).Kind != token.KwReturn {
		t.Fatalf("first token kind = %s, want %s", toks.At(0).Kind, token.KwReturn)
	}
	if toks.At(1).Kind != token.Identifier {
		t.Fatalf("second token kind = %s, want identifier (maximal munch over the keyword prefix)", toks.At(1).Kind)
	}
}

func TestLexMaximalMunchPunctuator(t *testing.T) {
	diags := diag.New("<test>", 8)
	toks, ok := Lex("a <<= b", 8, diags)
	if !ok {
		t.Fatalf("Lex reported invalid, diagnostics: %+v", diags.Diagnostics)
	}
	if toks.At(1).Kind != token.LShiftEqual {
		t.Fatalf("operator token kind = %s, want %s (longest match, not < then < then =)", toks.At(1).Kind, token.LShiftEqual)
	}
}

func TestLexUnknownTokenRecordsDiagnosticAndContinues(t *testing.T) {
	diags := diag.New("<test>", 8)
	toks, ok := Lex("int x `; int y;", 8, diags)
	if ok {
		t.Fatal("Lex reported valid for input containing an unknown character")
	}
	if diags.Len() == 0 {
		t.Fatal("no diagnostic recorded for unknown token")
	}
	if diags.Diagnostics[0].Kind != diag.UnknownToken {
		t.Fatalf("diagnostic kind = %s, want %s", diags.Diagnostics[0].Kind, diag.UnknownToken)
	}
	// Lexing must still continue past the bad byte and produce the rest of
	// the token stream for downstream error recovery.
	last := toks.At(toks.Len() - 2)
	if last.Kind != token.Semicolon {
		t.Fatalf("token before EOF = %s, want semicolon (lexing continued after the bad byte)", last.Kind)
	}
}

func TestListAtClampsPastEnd(t *testing.T) {
	diags := diag.New("<test>", 8)
	toks, _ := Lex("x;", 8, diags)
	eof := toks.At(toks.Len() - 1)
	past := toks.At(toks.Len() + 50)
	if past.Kind != eof.Kind {
		t.Fatalf("At() past the end = %s, want the trailing EOF kind %s", past.Kind, eof.Kind)
	}
}
