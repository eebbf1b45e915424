// Package isa defines the AArch64 instruction set surface this toolchain's
// assembler and disassembler share: register/immediate operand shapes, the
// parameter-program mini-language of spec.md §4.4, and the static
// descriptor table every mnemonic resolves through.
//
// Grounded on the teacher's vm.CondEQ-style condition constants and its
// encoder's per-instruction bit-twiddling (lookbusy1344/arm-emulator's
// encoder/*.go ORs operand fields into a base opcode word by hand per
// mnemonic); this package keeps that "OR a field into a base word" core
// but regrows the dispatch into the data-driven descriptor list spec.md
// §9's design notes call for in place of one switch-per-mnemonic function,
// so a new instruction form is a table row instead of a new Go function.
package isa

// ParamKind is one operand-kind letter of spec.md §4.4's parameter
// program.
type ParamKind int

const (
	// SetSF ("A<n>") remembers the bit offset where the sf (64-bit) flag
	// must be written; all subsequent register widths are cross-checked
	// against it.
	SetSF ParamKind = iota
	// RegNoSP ("Z<s>") reads a register that must not be SP (ZR allowed),
	// ORing its number at bit shift s.
	RegNoSP
	// RegSP ("S<s>") is the same but SP-allowed, ZR-forbidden.
	RegSP
	// RegExtended ("E<s>,<o>,<i>") is an extended-register operand.
	RegExtended
	// Imm ("I<w>,<s>") is an unsigned immediate of width w at shift s,
	// optionally suffixed with ", LSL #0" or ", LSL #12".
	Imm
	// ShiftNoRor ("H<s>,<i>") is an optional shift suffix excluding ROR.
	ShiftNoRor
	// ShiftRor ("R<s>,<i>") is an optional shift suffix including ROR.
	ShiftRor
	// Bitmask ("B") is a logical-immediate encoded as an (N, immr, imms)
	// triple.
	Bitmask
	// Label ("L") is a PC-relative label reference encoded with the ADR
	// immlo/immhi split.
	Label
	// PostSPCheck ("X") requires at least one of the two previously-read
	// registers to be SP.
	PostSPCheck
)

// Param is one element of a descriptor's parameter program, in the
// structured form spec.md §9 recommends over a character-scanning loop
// while keeping the encoded field positions identical to the mini-language
// of spec.md §4.4.
type Param struct {
	Kind ParamKind

	Shift    int // Z, S, E, I, H, R: primary bit shift
	Width    int // I: immediate width in bits
	ExtShift int // E: 3-bit extension-option field shift
	AmtShift int // E, H, R: shift/extend amount field shift
	SFBit    int // A: bit position of the sf flag
}

// Z is shorthand for a RegNoSP parameter at bit shift s.
func Z(s int) Param { return Param{Kind: RegNoSP, Shift: s} }

// S is shorthand for a RegSP parameter at bit shift s.
func S(s int) Param { return Param{Kind: RegSP, Shift: s} }

// I is shorthand for an Imm parameter of width w at bit shift s.
func I(w, s int) Param { return Param{Kind: Imm, Width: w, Shift: s} }

// H is shorthand for a ShiftNoRor parameter (type at s, amount at i).
func H(s, i int) Param { return Param{Kind: ShiftNoRor, Shift: s, AmtShift: i} }

// R is shorthand for a ShiftRor parameter (type at s, amount at i).
func R(s, i int) Param { return Param{Kind: ShiftRor, Shift: s, AmtShift: i} }

// E is shorthand for a RegExtended parameter (reg at s, option at o,
// amount at i).
func E(s, o, i int) Param { return Param{Kind: RegExtended, Shift: s, ExtShift: o, AmtShift: i} }

// A is shorthand for a SetSF parameter recording the sf bit position.
func A(n int) Param { return Param{Kind: SetSF, SFBit: n} }

// B is shorthand for a Bitmask parameter.
func B() Param { return Param{Kind: Bitmask} }

// L is shorthand for a Label parameter.
func L() Param { return Param{Kind: Label} }

// X is shorthand for a PostSPCheck parameter.
func X() Param { return Param{Kind: PostSPCheck} }

// AliasCond is a preferred-alias trigger condition (spec.md §4.4's
// "preferred-alias selection"): "S" checks whether either of the first two
// register operands is the zero/stack register (31), "Z" checks whether
// the destination register alone is.
type AliasCond int

const (
	AliasNone AliasCond = iota
	AliasS              // at least one of the two low registers is 31
	AliasZ              // the destination register is 31
)

// Alias is a descriptor's preferred disassembly rendering: when Cond holds
// over the decoded fields, render as Mnemonic with the operand at index
// OmitParam dropped.
type Alias struct {
	Cond      AliasCond
	Mnemonic  string
	OmitParam int
}

// Descriptor is one instruction form: a fixed base opcode word, the
// parameter program describing how operands are read (assembly) or
// extracted (disassembly) and where they land, and an optional preferred
// alias for disassembly.
type Descriptor struct {
	Mnemonic string
	Base     uint32
	Mask     uint32 // the fixed opcode bits that must equal Base (operand fields left clear); used by the disassembler to recognize a match
	Params   []Param
	Alias    *Alias
}
