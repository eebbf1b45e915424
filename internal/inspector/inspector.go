// Package inspector implements the TUI pipeline inspector of SPEC_FULL.md
// §2: it steps a C source file through reader → lexer → parser → AST, or
// an assembly file through label pass → instruction pass → disassembly,
// rendering tokens/AST/diagnostics/hex dump in panes.
//
// Grounded on the teacher's debugger/tui.go: the same panel layout style
// (tview.Flex rows/columns of bordered, titled TextViews) and the same
// global-key-capture pattern (the only key handled here is Ctrl-C, which
// quits), regrown from "inspect a running emulator's registers/memory/
// stack" to "inspect a finished compile or assemble pass's stages". There
// is no command input and no execution to step through: every pane is
// filled once, from the completed pipeline run.
package inspector

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cymbtoolchain/cymb/internal/arena"
	"github.com/cymbtoolchain/cymb/internal/assembler"
	"github.com/cymbtoolchain/cymb/internal/diag"
	"github.com/cymbtoolchain/cymb/internal/diagprint"
	"github.com/cymbtoolchain/cymb/internal/disassembler"
	"github.com/cymbtoolchain/cymb/internal/lexer"
	"github.com/cymbtoolchain/cymb/internal/parser"
)

// Inspector holds the panel layout and a bounded history of the inspect
// commands it has run. RunSource and RunAssembly record the opened path
// and pass a fixed limit of 1000 entries; the config file is not read.
type Inspector struct {
	App        *tview.Application
	SourceView *tview.TextView
	StageView  *tview.TextView
	DiagView   *tview.TextView
	HexView    *tview.TextView
	StatusBar  *tview.TextView

	history    []string
	historyMax int
}

func newInspector(historyMax int) *Inspector {
	if historyMax <= 0 {
		historyMax = 1000
	}
	in := &Inspector{App: tview.NewApplication(), historyMax: historyMax}
	in.initViews()
	return in
}

func (in *Inspector) initViews() {
	in.SourceView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	in.SourceView.SetBorder(true).SetTitle(" Source ")

	in.StageView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	in.StageView.SetBorder(true).SetTitle(" Pipeline ")

	in.DiagView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	in.DiagView.SetBorder(true).SetTitle(" Diagnostics ")

	in.HexView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	in.HexView.SetBorder(true).SetTitle(" Hex Dump ")

	in.StatusBar = tview.NewTextView().SetDynamicColors(true)
	in.StatusBar.SetBorder(true).SetTitle(" Status (Ctrl-C quit) ")
}

func (in *Inspector) layout() *tview.Flex {
	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(in.SourceView, 0, 2, false).
		AddItem(in.HexView, 0, 1, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(in.StageView, 0, 2, false).
		AddItem(in.DiagView, 0, 1, false)

	content := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(left, 0, 1, false).
		AddItem(right, 0, 1, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(content, 0, 5, false).
		AddItem(in.StatusBar, 3, 0, false)
}

func (in *Inspector) recordCommand(cmd string) {
	in.history = append(in.history, cmd)
	if len(in.history) > in.historyMax {
		in.history = in.history[len(in.history)-in.historyMax:]
	}
}

func (in *Inspector) bindQuit() {
	in.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			in.App.Stop()
			return nil
		}
		return event
	})
}

// RunSource drives the C-source pipeline (reader → lexer → parser → AST)
// against path and renders every stage, blocking until the user quits.
func RunSource(path string, tabWidth int) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	in := newInspector(1000)
	in.recordCommand("inspect:" + path)
	in.SourceView.SetText(string(src))

	diags := diag.New(path, tabWidth)
	toks, ok := lexer.Lex(string(src), tabWidth, diags)

	var stage strings.Builder
	fmt.Fprintf(&stage, "[yellow]tokens:[white] %d\n", toks.Len())
	for i := 0; i < toks.Len() && i < 500; i++ {
		t := toks.At(i)
		fmt.Fprintf(&stage, "  %-4d %-16s %q\n", i, t.Kind, t.Info.Hint)
	}

	if ok {
		a := arena.New()
		prog, outcome := parser.ParseProgram(toks, diags, a)
		fmt.Fprintf(&stage, "\n[yellow]parse outcome:[white] %s\n", outcome)
		if prog != nil {
			fmt.Fprintf(&stage, "[yellow]functions:[white] %d\n", len(prog.Functions))
		}
	}
	in.StageView.SetText(stage.String())

	var diagText strings.Builder
	for _, d := range diags.Diagnostics {
		diagText.WriteString(diagprint.One(path, tabWidth, d))
	}
	in.DiagView.SetText(diagText.String())
	in.HexView.SetText(hexDump([]byte(src)))
	in.StatusBar.SetText(fmt.Sprintf("source: %s  diagnostics: %d", path, len(diags.Diagnostics)))

	in.bindQuit()
	return in.App.SetRoot(in.layout(), true).SetFocus(in.StageView).Run()
}

// RunAssembly drives the assembly pipeline (label pass → instruction pass
// → disassembly) against path and renders every stage.
func RunAssembly(path string, tabWidth int) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	in := newInspector(1000)
	in.recordCommand("inspect:" + path)
	in.SourceView.SetText(string(src))

	diags := diag.New(path, tabWidth)
	a := arena.New()
	words, ok := assembler.Assemble(string(src), tabWidth, diags, a)

	var stage strings.Builder
	fmt.Fprintf(&stage, "[yellow]words:[white] %d\n", len(words))
	for i, ins := range disassembler.DecodeAll(words, 0) {
		fmt.Fprintf(&stage, "  %04x  %08x  %s\n", i*4, words[i], ins.String())
	}
	if !ok {
		fmt.Fprintln(&stage, "\n[red]assembly failed[white]")
	}
	in.StageView.SetText(stage.String())

	var diagText strings.Builder
	for _, d := range diags.Diagnostics {
		diagText.WriteString(diagprint.One(path, tabWidth, d))
	}
	in.DiagView.SetText(diagText.String())

	text := make([]byte, len(words)*4)
	for i, w := range words {
		text[i*4+0] = byte(w)
		text[i*4+1] = byte(w >> 8)
		text[i*4+2] = byte(w >> 16)
		text[i*4+3] = byte(w >> 24)
	}
	in.HexView.SetText(hexDump(text))
	in.StatusBar.SetText(fmt.Sprintf("assembly: %s  words: %d  diagnostics: %d", path, len(words), len(diags.Diagnostics)))

	in.bindQuit()
	return in.App.SetRoot(in.layout(), true).SetFocus(in.StageView).Run()
}

func hexDump(data []byte) string {
	var sb strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&sb, "%08x  ", off)
		for i := off; i < end; i++ {
			fmt.Fprintf(&sb, "%02x ", data[i])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
