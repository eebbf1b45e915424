// Package assembler implements spec.md §4.4: a two-pass assembler turning
// AArch64 assembly text into a vector of 32-bit code words, driven by
// internal/isa's descriptor table and parameter programs.
//
// Grounded on the teacher's parser.Parser two-pass structure
// (lookbusy1344/arm-emulator's parser/parser.go builds a symbol table of
// label offsets in a first pass, then encodes instructions referencing it
// in a second — see parser/symbols.go), regrown around AArch64's
// fixed-width 32-bit instructions and a data-driven descriptor table in
// place of the teacher's per-mnemonic switch (encoder/encoder.go).
package assembler

import (
	"strings"

	"github.com/cymbtoolchain/cymb/internal/arena"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/isa"
	"github.com/cymbtoolchain/cymb/internal/result"
	"github.com/cymbtoolchain/cymb/internal/source"
)

// Assemble runs both passes over src and returns the resulting code words
// plus a validity flag (false if any diagnostic was raised).
func Assemble(src string, tabWidth int, diags *diag.List, a *arena.Arena) ([]uint32, bool) {
	lines := strings.Split(src, "\n")
	labels, instrs, ok1 := pass1Labels(lines, diags)
	words, ok2 := pass2Instructions(instrs, labels, tabWidth, diags, a)
	return words, ok1 && ok2
}

// instrLine is one non-label, non-blank assembly line plus the byte offset
// it will occupy.
type instrLine struct {
	lineNo int
	text   string
	offset uint32
}

// pass1Labels scans src line-by-line, registering label definitions at the
// current instruction offset and collecting the remaining instruction
// lines, per spec.md §4.4 Pass 1.
func pass1Labels(lines []string, diags *diag.List) (map[string]uint32, []instrLine, bool) {
	labels := make(map[string]uint32)
	var instrs []instrLine
	ok := true
	var offset uint32

	for i, raw := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if idx := strings.IndexByte(trimmed, ':'); idx >= 0 {
			label, isLabel := splitLabel(trimmed)
			if !isLabel {
				diags.Add(diag.InvalidLabel, diag.Info{
					Pos:  source.Position{Line: lineNo, Column: 1},
					Line: raw, Hint: trimmed,
				})
				ok = false
				continue
			}
			if _, dup := labels[label]; dup {
				diags.Add(diag.DuplicateLabel, diag.Info{
					Pos:  source.Position{Line: lineNo, Column: 1},
					Line: raw, Hint: label,
				})
				ok = false
				continue
			}
			labels[label] = offset
			continue
		}
		instrs = append(instrs, instrLine{lineNo: lineNo, text: trimmed, offset: offset})
		offset += 4
	}
	return labels, instrs, ok
}

// splitLabel reports whether s is exactly `identifier [ws] : [ws]` with
// nothing else trailing, returning the label name if so.
func splitLabel(s string) (string, bool) {
	if len(s) == 0 || !isLabelStart(s[0]) {
		return "", false
	}
	j := 1
	for j < len(s) && isLabelCont(s[j]) {
		j++
	}
	name := s[:j]
	k := j
	for k < len(s) && s[k] == ' ' {
		k++
	}
	if k >= len(s) || s[k] != ':' {
		return "", false
	}
	k++
	for k < len(s) && s[k] == ' ' {
		k++
	}
	if k != len(s) {
		return "", false
	}
	return name, true
}

func isLabelStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isLabelCont(ch byte) bool {
	return isLabelStart(ch) || (ch >= '0' && ch <= '9')
}

// pass2Instructions encodes every instruction line, per spec.md §4.4 Pass
// 2: split off the mnemonic, look up its descriptor group, and try each
// descriptor's parameter program speculatively until one matches.
func pass2Instructions(instrs []instrLine, labels map[string]uint32, tabWidth int, diags *diag.List, a *arena.Arena) ([]uint32, bool) {
	words := make([]uint32, len(instrs))
	ok := true

	for i, line := range instrs {
		word, good := encodeLine(line, labels, tabWidth, diags, a)
		words[i] = word
		if !good {
			ok = false
		}
	}
	return words, ok
}

func lineInfo(l instrLine) diag.Info {
	return diag.Info{Pos: source.Position{Line: l.lineNo, Column: 1}, Line: l.text, Hint: l.text}
}

// encodeLine extracts the mnemonic (up to 4 uppercase letters/digits/
// underscores) and operand text, then dispatches to the descriptor group.
func encodeLine(line instrLine, labels map[string]uint32, tabWidth int, diags *diag.List, a *arena.Arena) (uint32, bool) {
	text := line.text
	j := 0
	for j < len(text) && isMnemonicChar(text[j]) {
		j++
	}
	mnemonic := text[:j]
	if len(mnemonic) == 0 || len(mnemonic) > 4 {
		diags.Add(diag.UnknownInstruction, lineInfo(line))
		return 0, false
	}

	rest := text[j:]
	var operandText string
	if rest != "" {
		if rest[0] != ' ' {
			diags.Add(diag.MissingSpace, lineInfo(line))
			return 0, false
		}
		n := 0
		for n < len(rest) && rest[n] == ' ' {
			n++
		}
		if n != 1 {
			diags.Add(diag.MissingSpace, lineInfo(line))
			return 0, false
		}
		operandText = rest[1:]
	}

	group := isa.Lookup(mnemonic)
	if group == nil {
		diags.Add(diag.UnknownInstruction, lineInfo(line))
		return 0, false
	}

	for _, desc := range group {
		cp := checkpoint{diagLen: diags.Len(), mark: a.Mark()}
		word, o := tryEncode(desc, operandText, tabWidth, line, labels, diags)
		switch o {
		case result.Match:
			return word, true
		case result.Invalid:
			return word, false
		case result.NoMatch:
			diags.Truncate(cp.diagLen)
			a.Release(cp.mark)
		}
	}

	diags.Add(diag.UnknownInstruction, lineInfo(line))
	return 0, false
}

// checkpoint is the three-resource snapshot spec.md §4.3/§5 describe,
// reused here across the assembler's speculative per-descriptor attempts
// (the assembler has no token cursor of its own; the operand reader's
// position plays that role instead, scoped to tryEncode's own call stack).
type checkpoint struct {
	diagLen int
	mark    arena.Mark
}
