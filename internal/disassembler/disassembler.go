// Package disassembler turns 32-bit AArch64 code words back into textual
// mnemonics using internal/isa's descriptor table, applying preferred-alias
// selection per spec.md §4.4.
//
// Grounded on the teacher's disassembly side of encoder/encoder.go (it
// decodes a word by masking out the same bit fields it encoded, to print
// disassembly in its debugger TUI); this package generalizes that into a
// descriptor-table walk instead of one switch-per-mnemonic.
package disassembler

import (
	"fmt"
	"strings"

	"github.com/cymbtoolchain/cymb/internal/isa"
)

// Instruction is one decoded word: the rendered mnemonic (post preferred-
// alias selection) and its operand text, space/comma-joined the way the
// assembler expects to read them back.
type Instruction struct {
	Mnemonic string
	Operands string
}

// String renders the instruction the way the assembler's own input syntax
// expects: "MNEM OP1, OP2, ...".
func (in Instruction) String() string {
	if in.Operands == "" {
		return in.Mnemonic
	}
	return in.Mnemonic + " " + in.Operands
}

// Decode finds the first descriptor in isa.Table whose Base/Mask matches
// word and decodes it, reporting false if no descriptor matches.
func Decode(word uint32, pc uint32) (Instruction, bool) {
	for _, desc := range isa.Table {
		if word&desc.Mask != desc.Base {
			continue
		}
		return decodeWith(desc, word, pc), true
	}
	return Instruction{}, false
}

// decodeWith extracts every operand field desc.Params describes, then
// applies desc.Alias if its condition holds over the decoded fields.
func decodeWith(desc isa.Descriptor, word uint32, pc uint32) Instruction {
	is64 := false
	var regs []string
	var regVals []uint32

	var parts []string
	for _, p := range desc.Params {
		switch p.Kind {
		case isa.SetSF:
			is64 = word&(1<<uint(p.SFBit)) != 0
		case isa.PostSPCheck:
			// Decoding never needs to re-check an already-encoded word.
		case isa.RegNoSP:
			n := (word >> uint(p.Shift)) & 0x1F
			s := regName(n, is64, false)
			regs = append(regs, s)
			regVals = append(regVals, n)
			parts = append(parts, s)
		case isa.RegSP:
			n := (word >> uint(p.Shift)) & 0x1F
			s := regName(n, is64, true)
			regs = append(regs, s)
			regVals = append(regVals, n)
			parts = append(parts, s)
		case isa.RegExtended:
			n := (word >> uint(p.Shift)) & 0x1F
			s := regName(n, is64, false)
			regs = append(regs, s)
			regVals = append(regVals, n)
			opt := (word >> uint(p.ExtShift)) & 0x7
			amt := (word >> uint(p.AmtShift)) & 0x7
			part := s
			if ext := extendName(opt); ext != "" {
				part += ", " + ext
				if amt != 0 {
					part += fmt.Sprintf(" #%d", amt)
				}
			}
			parts = append(parts, part)
		case isa.Imm:
			v := (word >> uint(p.Shift)) & (1<<uint(p.Width) - 1)
			part := fmt.Sprintf("#%d", v)
			if word&(1<<uint(p.Shift+p.Width)) != 0 {
				part += ", LSL #12"
			}
			parts = append(parts, part)
		case isa.ShiftNoRor, isa.ShiftRor:
			typ := (word >> uint(p.Shift)) & 0x3
			amt := (word >> uint(p.AmtShift)) & 0x3F
			if typ != 0 || amt != 0 {
				parts[len(parts)-1] += fmt.Sprintf(", %s #%d", shiftName(typ), amt)
			}
		case isa.Bitmask:
			n := (word >> 22) & 1
			immr := (word >> 16) & 0x3F
			imms := (word >> 10) & 0x3F
			v, ok := isa.DecodeBitmask(n, immr, imms, is64)
			if ok {
				parts = append(parts, fmt.Sprintf("#%d", v))
			} else {
				parts = append(parts, "#0")
			}
		case isa.Label:
			immlo := (word >> 29) & 0x3
			immhi := (word >> 5) & 0x7FFFF
			disp := signExtend21(immhi<<2 | immlo)
			target := int64(pc) + disp
			parts = append(parts, fmt.Sprintf("0x%x", target))
		}
	}

	mnemonic := desc.Mnemonic
	if desc.Alias != nil && aliasApplies(desc.Alias.Cond, regVals) {
		mnemonic = desc.Alias.Mnemonic
		i := desc.Alias.OmitParam
		if i >= 0 && i < len(parts) {
			parts = append(parts[:i], parts[i+1:]...)
		}
	}

	return Instruction{Mnemonic: mnemonic, Operands: strings.Join(parts, ", ")}
}

// aliasApplies evaluates a descriptor's preferred-alias condition, per
// spec.md §4.4: "S" looks at the first two register operands (destination,
// first source), "Z" looks at the destination alone.
func aliasApplies(cond isa.AliasCond, regVals []uint32) bool {
	switch cond {
	case isa.AliasS:
		for i := 0; i < len(regVals) && i < 2; i++ {
			if regVals[i] == 31 {
				return true
			}
		}
		return false
	case isa.AliasZ:
		return len(regVals) > 0 && regVals[0] == 31
	default:
		return false
	}
}

func regName(n uint32, is64, spForm bool) string {
	if n == 31 {
		if spForm {
			if is64 {
				return "SP"
			}
			return "WSP"
		}
		if is64 {
			return "XZR"
		}
		return "WZR"
	}
	if is64 {
		return fmt.Sprintf("X%d", n)
	}
	return fmt.Sprintf("W%d", n)
}

var extendNames = []string{"UXTB", "UXTH", "UXTW", "UXTX", "SXTB", "SXTH", "SXTW", "SXTX"}

func extendName(opt uint32) string {
	if int(opt) < len(extendNames) {
		return extendNames[opt]
	}
	return ""
}

var shiftNames = []string{"LSL", "LSR", "ASR", "ROR"}

func shiftName(typ uint32) string {
	if int(typ) < len(shiftNames) {
		return shiftNames[typ]
	}
	return "LSL"
}

// signExtend21 sign-extends a 21-bit value (ADR's immhi:immlo split) to a
// 64-bit signed displacement.
func signExtend21(v uint32) int64 {
	const bits = 21
	x := int64(v << (32 - bits))
	return x >> (32 - bits)
}

// DecodeAll decodes a full code vector, one instruction per word, computing
// each instruction's own address from base plus its 4-byte-aligned offset
// (used by ADR's PC-relative rendering).
func DecodeAll(words []uint32, base uint32) []Instruction {
	out := make([]Instruction, len(words))
	for i, w := range words {
		pc := base + uint32(i)*4
		in, ok := Decode(w, pc)
		if !ok {
			out[i] = Instruction{Mnemonic: fmt.Sprintf(".word 0x%08x", w)}
			continue
		}
		out[i] = in
	}
	return out
}
