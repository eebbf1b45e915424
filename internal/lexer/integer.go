package lexer

import (
	"strings"

	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/source"
	"github.com/cymbtoolchain/cymb/internal/token"
)

// Type limits used by the promotion ladder below. Long and long long are
// both treated as 64-bit (the AArch64 LP64 model this toolchain targets).
const (
	intMax       uint64 = 0x7FFFFFFF
	uintMax      uint64 = 0xFFFFFFFF
	longMax      uint64 = 0x7FFFFFFFFFFFFFFF
	ulongMax     uint64 = 0xFFFFFFFFFFFFFFFF
	longLongMax  uint64 = 0x7FFFFFFFFFFFFFFF
	ulongLongMax uint64 = 0xFFFFFFFFFFFFFFFF
)

type rung struct {
	t   token.PromotedType
	max uint64
}

var (
	rInt           = rung{token.TInt, intMax}
	rUInt          = rung{token.TUnsignedInt, uintMax}
	rLong          = rung{token.TLong, longMax}
	rULong         = rung{token.TUnsignedLong, ulongMax}
	rLongLong      = rung{token.TLongLong, longLongMax}
	rULongLong     = rung{token.TUnsignedLongLong, ulongLongMax}
)

// suffixKind is the parsed integer-suffix shape.
type suffixKind int

const (
	sufNone suffixKind = iota
	sufU
	sufL
	sufLL
	sufUL
	sufULL
	sufInvalid
)

// parseSuffix normalizes a trailing alphanumeric run against the suffix
// grammar of spec.md §4.2 (case-insensitive u/l/ll/ul-lu/ull-llu).
func parseSuffix(text string) suffixKind {
	switch strings.ToUpper(text) {
	case "":
		return sufNone
	case "U":
		return sufU
	case "L":
		return sufL
	case "LL":
		return sufLL
	case "UL", "LU":
		return sufUL
	case "ULL", "LLU":
		return sufULL
	default:
		return sufInvalid
	}
}

// ladder returns the ordered list of candidate types to try for a constant
// with the given base and suffix, per spec.md §4.2 and §9's open question
// (a): non-decimal constants suffixed with a bare 'l' promote through
// long -> unsigned long -> long long -> unsigned long long, diverging from
// strict C17 (long -> long long -> unsigned long long) per the documented,
// authoritative behavior.
func ladder(base int, suf suffixKind) []rung {
	decimal := base == 10
	switch suf {
	case sufU:
		return []rung{rUInt, rULong, rULongLong}
	case sufUL:
		return []rung{rULong, rULongLong}
	case sufULL:
		return []rung{rULongLong}
	case sufL:
		if decimal {
			return []rung{rLong, rLongLong}
		}
		return []rung{rLong, rULong, rLongLong, rULongLong}
	case sufLL:
		if decimal {
			return []rung{rLongLong}
		}
		return []rung{rLongLong, rULongLong}
	default: // sufNone, sufInvalid (treated as unsuffixed)
		if decimal {
			return []rung{rInt, rLong, rLongLong}
		}
		return []rung{rInt, rUInt, rLong, rULong, rLongLong, rULongLong}
	}
}

// promote picks the smallest type in the ladder that can hold value,
// returning the last (widest) entry plus false if none fits.
func promote(base int, suf suffixKind, value uint64) (token.PromotedType, bool) {
	l := ladder(base, suf)
	for _, r := range l {
		if value <= r.max {
			return r.t, true
		}
	}
	return l[len(l)-1].t, false
}

func digitValue(ch byte, base int) (int, bool) {
	var v int
	switch {
	case ch >= '0' && ch <= '9':
		v = int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		v = int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		v = int(ch-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// lexIntegerConstant implements spec.md §4.2's integer-constant sub-lexer:
// base detection (0x/0X, 0b/0B, leading-0-then-octal-digit, else decimal),
// digit separators with separator-after-base/duplicate-separator/
// trailing-separator diagnostics, a suffix grammar, and promotion to the
// smallest fitting type per the ladder above.
func lexIntegerConstant(r source.Reader, diags *diag.List) (token.Token, source.Reader, result.Outcome) {
	if !isDigit(r.Current()) {
		return token.Token{}, r, result.NoMatch
	}
	start := r
	pos := r.Pos()
	line := r.CurrentLine()
	outcome := result.Match

	base := 10
	if r.Current() == '0' {
		switch r.Peek(1) {
		case 'x', 'X':
			j := 2
			for r.Peek(j) == '\'' {
				j++
			}
			if _, ok := digitValue(r.Peek(j), 16); ok {
				base = 16
				r.PopOne()
				r.PopOne()
			}
		case 'b', 'B':
			j := 2
			for r.Peek(j) == '\'' {
				j++
			}
			if _, ok := digitValue(r.Peek(j), 2); ok {
				base = 2
				r.PopOne()
				r.PopOne()
			}
		default:
			j := 1
			for r.Peek(j) == '\'' {
				j++
			}
			if p := r.Peek(j); p >= '0' && p <= '7' {
				base = 8
			}
		}
	}

	var value uint64
	overflowed := false
	sawDigit := false
	sawSeparator := false
	var lastSepPos source.Position
	var lastSepLine string

	for {
		ch := r.Current()
		if ch == '\'' {
			sepPos := r.Pos()
			sepLine := r.CurrentLine()
			if !sawDigit {
				diags.Add(diag.SeparatorAfterBase, diag.Info{Pos: sepPos, Line: sepLine, Hint: "'"})
				outcome = result.Invalid
			} else if sawSeparator {
				diags.Add(diag.DuplicateSeparator, diag.Info{Pos: sepPos, Line: sepLine, Hint: "'"})
				outcome = result.Invalid
			}
			sawSeparator = true
			lastSepPos, lastSepLine = sepPos, sepLine
			r.PopOne()
			continue
		}
		dv, ok := digitValue(ch, base)
		if !ok {
			break
		}
		if value > (^uint64(0))/uint64(base) {
			overflowed = true
		}
		nv := value*uint64(base) + uint64(dv)
		if nv < value {
			overflowed = true
		}
		value = nv
		sawDigit = true
		sawSeparator = false
		r.PopOne()
	}

	if sawSeparator {
		diags.Add(diag.TrailingSeparator, diag.Info{Pos: lastSepPos, Line: lastSepLine, Hint: "'"})
		outcome = result.Invalid
	}

	suffixStart := r
	for isIdentCont(r.Current()) {
		r.PopOne()
	}
	suffixText := r.Slice(suffixStart)

	suf := parseSuffix(suffixText)
	if suf == sufInvalid {
		diags.Add(diag.InvalidConstantSuffix, diag.Info{Pos: suffixStart.Pos(), Line: suffixStart.CurrentLine(), Hint: suffixText})
		outcome = result.Invalid
		suf = sufNone
	}

	promoted, fits := promote(base, suf, value)
	if overflowed || !fits {
		diags.Add(diag.ConstantTooLarge, diag.Info{Pos: pos, Line: line, Hint: r.Slice(start)})
		outcome = result.Invalid
	}

	tok := token.Token{
		Kind: token.IntegerConstant,
		Info: diag.Info{Pos: pos, Line: line, Hint: r.Slice(start)},
		Int:  token.IntConstant{Type: promoted, Value: value},
	}
	return tok, r, outcome
}
