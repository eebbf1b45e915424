// Package diag implements the diagnostic model of spec.md §3/§7: a closed
// kind enum, a diagnostic-info tuple (position, source line, hint), and an
// append-only list that supports truncation for speculative-parse rollback.
//
// Grounded on the teacher's parser.Error / parser.ErrorList
// (lookbusy1344/arm-emulator's parser/errors.go), generalized from a single
// free-text Message field into the closed Kind set spec.md requires, and
// extended with the append-only truncate-to-length rollback the teacher
// never needed (it has no speculative parsing).
package diag

import "github.com/cymbtoolchain/cymb/internal/source"

// Info is the tuple every diagnostic (and every token) carries: where it is,
// the source line it's on, and the exact text it refers to.
type Info struct {
	Pos  source.Position
	Line string // the full source line, for context
	Hint string // the exact bytes the diagnostic/token refers to
}

// Diagnostic is one recorded finding.
type Diagnostic struct {
	Kind    Kind
	Info    Info
	Message string // human-readable detail beyond what Kind implies, may be empty
}

// List is the append-only diagnostic collector threaded through every
// stage. It additionally carries the file name and tab width needed to
// render diagnostics, matching the contract of spec.md §3 ("Diagnostic
// list").
type List struct {
	Filename    string
	TabWidth    int
	Diagnostics []Diagnostic
}

// New creates an empty diagnostic list for filename with the given tab
// width (used to expand tabs when rendering the caret/tilde underline).
func New(filename string, tabWidth int) *List {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &List{Filename: filename, TabWidth: tabWidth}
}

// Add appends a diagnostic.
func (l *List) Add(kind Kind, info Info) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{Kind: kind, Info: info})
}

// Addf appends a diagnostic with an extra free-text message.
func (l *List) Addf(kind Kind, info Info, message string) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{Kind: kind, Info: info, Message: message})
}

// Len returns the current diagnostic count, used as a speculative-parse
// checkpoint.
func (l *List) Len() int {
	return len(l.Diagnostics)
}

// Truncate discards every diagnostic recorded after a checkpoint obtained
// from Len, undoing a failed speculative alternative.
func (l *List) Truncate(n int) {
	l.Diagnostics = l.Diagnostics[:n]
}

// HasErrors reports whether any diagnostic was recorded.
func (l *List) HasErrors() bool {
	return len(l.Diagnostics) > 0
}
