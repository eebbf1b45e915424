package diag

import (
	"testing"

	"github.com/cymbtoolchain/cymb/internal/source"
)

func TestAddAndAddf(t *testing.T) {
	l := New("foo.c", 4)
	l.Add(InvalidLabel, Info{Pos: source.Position{Line: 1, Column: 1}})
	l.Addf(InvalidLabel, Info{Pos: source.Position{Line: 2, Column: 1}}, "extra detail")

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if !l.HasErrors() {
		t.Fatal("HasErrors() = false, want true after Add")
	}
	if l.Diagnostics[1].Message != "extra detail" {
		t.Fatalf("Diagnostics[1].Message = %q, want %q", l.Diagnostics[1].Message, "extra detail")
	}
}

func TestTruncateRollsBackToCheckpoint(t *testing.T) {
	l := New("foo.c", 4)
	l.Add(InvalidLabel, Info{})
	mark := l.Len()
	l.Add(InvalidLabel, Info{})
	l.Add(InvalidLabel, Info{})
	if l.Len() != 3 {
		t.Fatalf("Len() before truncate = %d, want 3", l.Len())
	}
	l.Truncate(mark)
	if l.Len() != 1 {
		t.Fatalf("Len() after truncate = %d, want 1", l.Len())
	}
	if !l.HasErrors() {
		t.Fatal("HasErrors() = false after truncating to a non-empty checkpoint")
	}
}

func TestNewClampsTabWidth(t *testing.T) {
	l := New("foo.c", 0)
	if l.TabWidth != 1 {
		t.Fatalf("TabWidth = %d, want 1 for a non-positive input", l.TabWidth)
	}
}

func TestEmptyListHasNoErrors(t *testing.T) {
	l := New("foo.c", 8)
	if l.HasErrors() {
		t.Fatal("HasErrors() = true for a freshly created list")
	}
}
