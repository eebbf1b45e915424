package lexer

import (
	"testing"

	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/token"
)

func lexOne(t *testing.T, src string) (token.Token, *diag.List) {
	t.Helper()
	diags := diag.New("<test>", 8)
	toks, _ := Lex(src, 8, diags)
	if toks.Len() < 1 {
		t.Fatalf("Lex(%q) produced no tokens", src)
	}
	return toks.At(0), diags
}

func TestLexIntegerConstantBases(t *testing.T) {
	cases := []struct {
		src  string
		want uint64
	}{
		{"42", 42},
		{"0x2A", 42},
		{"0b101010", 42},
		{"052", 42}, // leading zero + octal digits
		{"0", 0},
	}
	for _, c := range cases {
		tok, diags := lexOne(t, c.src)
		if diags.HasErrors() {
			t.Fatalf("Lex(%q) recorded diagnostics: %+v", c.src, diags.Diagnostics)
		}
		if tok.Kind != token.IntegerConstant {
			t.Fatalf("Lex(%q) kind = %s, want integer-constant", c.src, tok.Kind)
		}
		if tok.Int.Value != c.want {
			t.Fatalf("Lex(%q) value = %d, want %d", c.src, tok.Int.Value, c.want)
		}
	}
}

func TestLexIntegerConstantDigitSeparators(t *testing.T) {
	tok, diags := lexOne(t, "1'000'000")
	if diags.HasErrors() {
		t.Fatalf("Lex with valid separators recorded diagnostics: %+v", diags.Diagnostics)
	}
	if tok.Int.Value != 1000000 {
		t.Fatalf("value = %d, want 1000000", tok.Int.Value)
	}
}

func TestLexIntegerConstantDuplicateSeparator(t *testing.T) {
	_, diags := lexOne(t, "1''000")
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic for a duplicate digit separator")
	}
	if diags.Diagnostics[0].Kind != diag.DuplicateSeparator {
		t.Fatalf("kind = %s, want %s", diags.Diagnostics[0].Kind, diag.DuplicateSeparator)
	}
}

func TestLexIntegerConstantTrailingSeparator(t *testing.T) {
	_, diags := lexOne(t, "100'")
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic for a trailing digit separator")
	}
	if diags.Diagnostics[0].Kind != diag.TrailingSeparator {
		t.Fatalf("kind = %s, want %s", diags.Diagnostics[0].Kind, diag.TrailingSeparator)
	}
}

func TestLexIntegerConstantSuffixPromotion(t *testing.T) {
	cases := []struct {
		src  string
		want token.PromotedType
	}{
		{"1", token.TInt},
		{"1u", token.TUnsignedInt},
		{"1L", token.TLong},
		{"1ull", token.TUnsignedLongLong},
		{"1LU", token.TUnsignedLong},
		{"4294967296", token.TLong}, // doesn't fit int, decimal ladder skips straight to long
	}
	for _, c := range cases {
		tok, diags := lexOne(t, c.src)
		if diags.HasErrors() {
			t.Fatalf("Lex(%q) recorded diagnostics: %+v", c.src, diags.Diagnostics)
		}
		if tok.Int.Type != c.want {
			t.Fatalf("Lex(%q) promoted type = %s, want %s", c.src, tok.Int.Type, c.want)
		}
	}
}

func TestLexIntegerConstantHexPrefixWithoutDigitIsNotConsumed(t *testing.T) {
	// "0xyz" has no hex digit after "0x", so the prefix must not commit to
	// base 16 and must not be consumed: it lexes as the decimal constant 0
	// followed by the invalid suffix "xyz".
	tok, diags := lexOne(t, "0xyz")
	if tok.Int.Value != 0 {
		t.Fatalf("value = %d, want 0", tok.Int.Value)
	}
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic for the invalid suffix xyz")
	}
	d := diags.Diagnostics[0]
	if d.Kind != diag.InvalidConstantSuffix {
		t.Fatalf("kind = %s, want %s", d.Kind, diag.InvalidConstantSuffix)
	}
	if d.Info.Hint != "xyz" {
		t.Fatalf("hint = %q, want %q", d.Info.Hint, "xyz")
	}
}

func TestLexIntegerConstantInvalidSuffix(t *testing.T) {
	_, diags := lexOne(t, "1qq")
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic for an invalid integer-constant suffix")
	}
	if diags.Diagnostics[0].Kind != diag.InvalidConstantSuffix {
		t.Fatalf("kind = %s, want %s", diags.Diagnostics[0].Kind, diag.InvalidConstantSuffix)
	}
}

func TestLexIntegerConstantOverflow(t *testing.T) {
	_, diags := lexOne(t, "99999999999999999999999999999999ULL")
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic for a constant too large for unsigned long long")
	}
	if diags.Diagnostics[0].Kind != diag.ConstantTooLarge {
		t.Fatalf("kind = %s, want %s", diags.Diagnostics[0].Kind, diag.ConstantTooLarge)
	}
}
