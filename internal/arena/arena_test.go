package arena

import "testing"

func TestAllocReturnsDistinctValues(t *testing.T) {
	a := New()
	p1 := Alloc(a, 1)
	p2 := Alloc(a, 2)
	if *p1 != 1 || *p2 != 2 {
		t.Fatalf("got *p1=%d *p2=%d, want 1 and 2", *p1, *p2)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
}

func TestMarkReleaseRollsBackAllocationCount(t *testing.T) {
	a := New()
	Alloc(a, "kept")
	m := a.Mark()
	Alloc(a, "discarded-1")
	Alloc(a, "discarded-2")
	if a.Len() != 3 {
		t.Fatalf("Len() before release = %d, want 3", a.Len())
	}
	a.Release(m)
	if a.Len() != 1 {
		t.Fatalf("Len() after release = %d, want 1", a.Len())
	}
	// Further allocation after a release must append cleanly, not panic or
	// corrupt the rolled-back log.
	p := Alloc(a, "new")
	if *p != "new" || a.Len() != 2 {
		t.Fatalf("allocation after release: *p=%q Len()=%d, want %q and 2", *p, a.Len(), "new")
	}
}

func TestReleaseToInitialMarkEmptiesArena(t *testing.T) {
	a := New()
	m := a.Mark()
	Alloc(a, 1)
	Alloc(a, 2)
	a.Release(m)
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
}
