// Command cyminspect launches the TUI pipeline inspector (SPEC_FULL.md §2)
// against either a C source file or an assembly file, chosen by extension.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cymbtoolchain/cymb/internal/inspector"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: cyminspect file.c|file.s")
		os.Exit(1)
	}
	path := os.Args[1]

	var err error
	if strings.HasSuffix(path, ".s") || strings.HasSuffix(path, ".S") {
		err = inspector.RunAssembly(path, 8)
	} else {
		err = inspector.RunSource(path, 8)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cyminspect: %v\n", err)
		os.Exit(1)
	}
}
