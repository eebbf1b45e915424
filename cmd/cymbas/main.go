// Command cymbas is the independent AArch64 assembler/disassembler driver
// (SPEC_FULL.md §3): "cymbas foo.s -o foo.o" assembles and writes a
// relocatable ELF64 object; "cymbas -d foo.o" disassembles .text back to
// mnemonics.
package main

import (
	"fmt"
	"os"

	"github.com/cymbtoolchain/cymb/internal/arena"
	"github.com/cymbtoolchain/cymb/internal/assembler"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/diagprint"
	"github.com/cymbtoolchain/cymb/internal/disassembler"
	"github.com/cymbtoolchain/cymb/internal/elfwriter"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	disassemble := false
	output := ""
	var inputs []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-d":
			disassemble = true
		case "-o":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "cymbas: -o requires a file name")
				return 1
			}
			i++
			output = args[i]
		default:
			inputs = append(inputs, args[i])
		}
	}

	if len(inputs) != 1 {
		fmt.Fprintln(os.Stderr, "usage: cymbas file.s -o file.o   |   cymbas -d file.o")
		return 1
	}

	if disassemble {
		return runDisassemble(inputs[0])
	}
	return runAssemble(inputs[0], output)
}

func runAssemble(path, output string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cymbas: %s: %v\n", path, err)
		return 1
	}
	if output == "" {
		output = path + ".o"
	}

	diags := diag.New(path, 8)
	a := arena.New()
	words, ok := assembler.Assemble(string(src), 8, diags, a)
	if !ok {
		diagprint.All(os.Stderr, diags)
		return 1
	}

	text := make([]byte, len(words)*4)
	for i, w := range words {
		text[i*4+0] = byte(w)
		text[i*4+1] = byte(w >> 8)
		text[i*4+2] = byte(w >> 16)
		text[i*4+3] = byte(w >> 24)
	}

	obj := elfwriter.Write(text, nil, 0, 4, 1, 1)
	if err := os.WriteFile(output, obj, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "cymbas: %s: %v\n", output, err)
		return 1
	}
	return 0
}

func runDisassemble(path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cymbas: %s: %v\n", path, err)
		return 1
	}
	obj, err := elfwriter.Read(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cymbas: %s: %v\n", path, err)
		return 1
	}

	var text []byte
	for _, s := range obj.Sections {
		if s.Name == ".text" {
			text = s.Data
		}
	}
	if text == nil {
		fmt.Fprintln(os.Stderr, "cymbas: no .text section")
		return 1
	}

	words := make([]uint32, len(text)/4)
	for i := range words {
		words[i] = uint32(text[i*4+0]) | uint32(text[i*4+1])<<8 |
			uint32(text[i*4+2])<<16 | uint32(text[i*4+3])<<24
	}

	for _, in := range disassembler.DecodeAll(words, 0) {
		fmt.Println(in.String())
	}
	return 0
}
