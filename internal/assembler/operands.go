package assembler

import (
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/isa"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/source"
)

func isMnemonicChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_'
}

// opState accumulates cross-parameter bookkeeping while a descriptor's
// parameter program is being read: the sf (64-bit) flag position (-1 when
// the descriptor has no `A` parameter) and value, and the register numbers
// and SP flags seen so far (for the `X` post-condition).
type opState struct {
	word      uint32
	sfBit     int
	sfSet     bool
	is64      bool
	regVals   []uint32 // register number read for each Z/S/E param, in order
	regIsSP   []bool
	instrInfo diag.Info
}

// tryEncode speculatively parses operandText against desc's parameter
// program, returning the encoded word and match/no-match/invalid.
func tryEncode(desc isa.Descriptor, operandText string, tabWidth int, line instrLine, labels map[string]uint32, diags *diag.List) (uint32, result.Outcome) {
	r := source.New(operandText, tabWidth)
	st := &opState{word: desc.Base, sfBit: -1, instrInfo: lineInfo(line)}

	first := true
	for _, param := range desc.Params {
		if param.Kind == isa.SetSF || param.Kind == isa.PostSPCheck {
			if param.Kind == isa.SetSF {
				st.sfBit = param.SFBit
			}
			continue
		}
		// Optional shift suffixes read their own leading comma.
		optionalSuffix := param.Kind == isa.ShiftNoRor || param.Kind == isa.ShiftRor
		if !first && !optionalSuffix {
			r.SkipSpacesInCurrentLine()
			if r.Current() != ',' {
				diags.Add(diag.MissingComma, lineInfo(line))
				return st.word, result.Invalid
			}
			r.PopOne()
			r.SkipSpacesInCurrentLine()
		}
		first = false

		o := consumeParam(st, &r, param, line, labels, diags)
		if o != result.Match {
			return st.word, o
		}
	}

	r.SkipSpacesInCurrentLine()
	if !r.AtEOF() {
		diags.Add(diag.UnexpectedCharactersAfterInstruction, lineInfo(line))
		return st.word, result.Invalid
	}

	if descHasPostSPCheck(desc) {
		anySP := false
		for i, v := range st.regVals {
			_ = v
			if st.regIsSP[i] {
				anySP = true
			}
		}
		if !anySP {
			diags.Add(diag.ExpectedSP, lineInfo(line))
			return st.word, result.Invalid
		}
	}

	if st.sfSet && st.sfBit >= 0 {
		if st.is64 {
			st.word |= 1 << uint(st.sfBit)
		} else {
			st.word &^= 1 << uint(st.sfBit)
		}
	}
	return st.word, result.Match
}

func consumeParam(st *opState, r *source.Reader, param isa.Param, line instrLine, labels map[string]uint32, diags *diag.List) result.Outcome {
	switch param.Kind {
	case isa.RegNoSP:
		return readRegister(st, r, param.Shift, false, line, diags)
	case isa.RegSP:
		return readRegister(st, r, param.Shift, true, line, diags)
	case isa.RegExtended:
		return readExtendedRegister(st, r, param, line, diags)
	case isa.Imm:
		return readImmediate(st, r, param, line, diags)
	case isa.ShiftNoRor:
		return readShift(st, r, param, false, line, diags)
	case isa.ShiftRor:
		return readShift(st, r, param, true, line, diags)
	case isa.Bitmask:
		return readBitmask(st, r, line, diags)
	case isa.Label:
		return readLabel(st, r, line, labels, diags)
	default:
		return result.Match
	}
}

// readRegister parses a register token (X<n>/W<n>, XZR/WZR, SP/WSP) and
// ORs its number into st.word at bit shift.
func readRegister(st *opState, r *source.Reader, shift int, spAllowed bool, line instrLine, diags *diag.List) result.Outcome {
	save := *r
	tok, is64, isSP, ok := scanRegisterToken(r)
	if !ok {
		*r = save
		return result.NoMatch
	}
	if isSP && !spAllowed {
		diags.Add(diag.InvalidSP, lineInfo(line))
		return result.Invalid
	}
	if err := checkWidth(st, is64, line, diags); err != result.Match {
		return err
	}
	st.word |= uint32(tok) << uint(shift)
	st.regVals = append(st.regVals, uint32(tok))
	st.regIsSP = append(st.regIsSP, isSP)
	return result.Match
}

// checkWidth cross-checks a register's width (32 vs 64-bit) against the
// sf flag established by the first register read, per spec.md §4.4's
// `A<n>` parameter ("all subsequent register widths are cross-checked").
func checkWidth(st *opState, is64 bool, line instrLine, diags *diag.List) result.Outcome {
	if !st.sfSet {
		st.sfSet = true
		st.is64 = is64
		return result.Match
	}
	if st.is64 != is64 {
		diags.Add(diag.InvalidRegisterWidth, lineInfo(line))
		return result.Invalid
	}
	return result.Match
}

// scanRegisterToken reads an uppercase register mnemonic at the cursor,
// classifying it into (number, is64, isSP).
func scanRegisterToken(r *source.Reader) (int, bool, bool, bool) {
	start := *r
	for isRegChar(r.Current()) {
		r.PopOne()
	}
	text := r.Slice(start)
	switch text {
	case "SP":
		return 31, true, true, true
	case "WSP":
		return 31, false, true, true
	case "XZR":
		return 31, true, false, true
	case "WZR":
		return 31, false, false, true
	}
	if len(text) < 2 {
		return 0, false, false, false
	}
	var is64 bool
	switch text[0] {
	case 'X':
		is64 = true
	case 'W':
		is64 = false
	default:
		return 0, false, false, false
	}
	n := 0
	for _, ch := range []byte(text[1:]) {
		if ch < '0' || ch > '9' {
			return 0, false, false, false
		}
		n = n*10 + int(ch-'0')
	}
	if n < 0 || n > 30 {
		return 0, false, false, false
	}
	return n, is64, false, true
}

func isRegChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// readImmediate parses `#<decimal>` optionally followed by `, LSL #0` or
// `, LSL #12`, validating the value fits in param.Width bits.
func readImmediate(st *opState, r *source.Reader, param isa.Param, line instrLine, diags *diag.List) result.Outcome {
	if r.Current() != '#' {
		return result.NoMatch
	}
	r.PopOne()
	value, ok := scanDecimal(r)
	if !ok {
		diags.Add(diag.ExpectedImmediate, lineInfo(line))
		return result.Invalid
	}

	// Optional ", LSL #0" / ", LSL #12" suffix.
	save := *r
	r.SkipSpacesInCurrentLine()
	if r.Current() == ',' {
		r.PopOne()
		r.SkipSpacesInCurrentLine()
		if matchKeyword(r, "LSL") {
			r.SkipSpacesInCurrentLine()
			if r.Current() != '#' {
				diags.Add(diag.InvalidImmediate, lineInfo(line))
				return result.Invalid
			}
			r.PopOne()
			amt, ok := scanDecimal(r)
			if !ok || (amt != 0 && amt != 12) {
				diags.Add(diag.InvalidImmediate, lineInfo(line))
				return result.Invalid
			}
			if amt == 12 {
				st.word |= 1 << uint(param.Shift+param.Width)
			}
		} else {
			*r = save
		}
	} else {
		*r = save
	}

	limit := uint64(1) << uint(param.Width)
	if value >= limit {
		diags.Add(diag.InvalidImmediate, lineInfo(line))
		return result.Invalid
	}
	st.word |= uint32(value) << uint(param.Shift)
	return result.Match
}

var shiftTypes = map[string]uint32{"LSL": 0, "LSR": 1, "ASR": 2, "ROR": 3}

// readShift parses an optional `, <TYPE> #<amount>` suffix (TYPE excludes
// ROR unless includeRor), defaulting to LSL #0 when absent.
func readShift(st *opState, r *source.Reader, param isa.Param, includeRor bool, line instrLine, diags *diag.List) result.Outcome {
	save := *r
	r.SkipSpacesInCurrentLine()
	if r.Current() != ',' {
		*r = save
		return result.Match
	}
	r.PopOne()
	r.SkipSpacesInCurrentLine()

	matched := ""
	for name := range shiftTypes {
		if matchKeyword(r, name) {
			matched = name
			break
		}
	}
	if matched == "" {
		*r = save
		return result.Match
	}
	if matched == "ROR" && !includeRor {
		diags.Add(diag.InvalidImmediate, lineInfo(line))
		return result.Invalid
	}
	r.SkipSpacesInCurrentLine()
	if r.Current() != '#' {
		diags.Add(diag.InvalidImmediate, lineInfo(line))
		return result.Invalid
	}
	r.PopOne()
	amt, ok := scanDecimal(r)
	if !ok || amt > 63 {
		diags.Add(diag.InvalidImmediate, lineInfo(line))
		return result.Invalid
	}
	st.word |= shiftTypes[matched] << uint(param.Shift)
	st.word |= uint32(amt) << uint(param.AmtShift)
	return result.Match
}

var extendTypes = map[string]uint32{
	"UXTB": 0, "UXTH": 1, "UXTW": 2, "UXTX": 3,
	"SXTB": 4, "SXTH": 5, "SXTW": 6, "SXTX": 7,
}

// readExtendedRegister parses the operand register plus an optional
// `, <EXTEND> [#amount]` suffix, per spec.md §4.4's `E<s>,<o>,<i>`.
func readExtendedRegister(st *opState, r *source.Reader, param isa.Param, line instrLine, diags *diag.List) result.Outcome {
	save := *r
	tok, is64, isSP, ok := scanRegisterToken(r)
	if !ok {
		*r = save
		return result.NoMatch
	}
	if isSP {
		diags.Add(diag.InvalidSP, lineInfo(line))
		return result.Invalid
	}
	st.word |= uint32(tok) << uint(param.Shift)
	st.regVals = append(st.regVals, uint32(tok))
	st.regIsSP = append(st.regIsSP, false)

	option := uint32(2)
	if is64 {
		option = 3
	}
	amt := uint32(0)

	save = *r
	r.SkipSpacesInCurrentLine()
	if r.Current() == ',' {
		r.PopOne()
		r.SkipSpacesInCurrentLine()
		found := false
		for name, bits := range extendTypes {
			if matchKeyword(r, name) {
				option = bits
				found = true
				break
			}
		}
		if !found {
			*r = save
		} else {
			save2 := *r
			r.SkipSpacesInCurrentLine()
			if r.Current() == '#' {
				r.PopOne()
				v, ok := scanDecimal(r)
				if !ok || v > 4 {
					diags.Add(diag.InvalidImmediate, lineInfo(line))
					return result.Invalid
				}
				amt = uint32(v)
			} else {
				*r = save2
			}
		}
	} else {
		*r = save
	}

	st.word |= option << uint(param.ExtShift)
	st.word |= amt << uint(param.AmtShift)
	return result.Match
}

// readBitmask parses `#<decimal>` as a logical-immediate bitmask value.
func readBitmask(st *opState, r *source.Reader, line instrLine, diags *diag.List) result.Outcome {
	if r.Current() != '#' {
		return result.NoMatch
	}
	r.PopOne()
	value, ok := scanDecimal(r)
	if !ok {
		diags.Add(diag.ExpectedImmediate, lineInfo(line))
		return result.Invalid
	}
	n, immr, imms, ok := isa.EncodeBitmask(value, st.is64)
	if !ok {
		diags.Add(diag.InvalidImmediate, lineInfo(line))
		return result.Invalid
	}
	st.word |= n << 22
	st.word |= immr << 16
	st.word |= imms << 10
	return result.Match
}

// readLabel parses a label-name reference and encodes the ADR-style
// immlo/immhi/sign split per spec.md §4.4's `L` parameter.
func readLabel(st *opState, r *source.Reader, line instrLine, labels map[string]uint32, diags *diag.List) result.Outcome {
	start := *r
	if !isLabelStart(r.Current()) {
		return result.NoMatch
	}
	for isLabelCont(r.Current()) {
		r.PopOne()
	}
	name := r.Slice(start)
	target, ok := labels[name]
	if !ok {
		diags.Add(diag.InvalidLabel, lineInfo(line))
		return result.Invalid
	}
	disp := int64(target) - int64(line.offset)
	st.word |= uint32(disp&0x3) << 29
	st.word |= uint32((disp>>2)&0x7FFFF) << 5
	return result.Match
}

func scanDecimal(r *source.Reader) (uint64, bool) {
	neg := false
	if r.Current() == '-' {
		neg = true
		r.PopOne()
	}
	start := *r
	var v uint64
	for r.Current() >= '0' && r.Current() <= '9' {
		v = v*10 + uint64(r.Current()-'0')
		r.PopOne()
	}
	if r.Slice(start) == "" {
		return 0, false
	}
	if neg {
		return uint64(-int64(v)), true
	}
	return v, true
}

func matchKeyword(r *source.Reader, kw string) bool {
	text := r.Lookahead(len(kw))
	if text != kw {
		return false
	}
	r.SkipN(len(kw))
	return true
}

func descHasPostSPCheck(d isa.Descriptor) bool {
	for _, p := range d.Params {
		if p.Kind == isa.PostSPCheck {
			return true
		}
	}
	return false
}
