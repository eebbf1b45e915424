// Package arena implements the bump allocator of spec.md §3/§4.3/§9: a
// checkpoint ("Mark") can be taken before a speculative parse and rolled
// back ("Release") to undo every allocation made since, in O(1).
//
// The teacher has nothing like this (its AST-equivalent, parser.Instruction/
// parser.Directive, is just appended to plain slices with no rollback); this
// is the "recursive arena + index scheme" spec.md's design notes (§9) call
// for, done with a generic free function instead of a reflection-based pool
// so every caller still gets a concrete *T back.
package arena

// Mark is an opaque checkpoint: the number of allocations recorded at the
// time it was taken.
type Mark int

// Arena tracks every value allocated through it so a Mark/Release pair can
// discard a suffix of allocations cheaply. It does not pool or reuse
// memory itself (Go's GC already does that once nothing references a
// released allocation); it exists purely to make "undo everything since
// this point" a single slice truncation instead of manual bookkeeping at
// every speculative-parse call site.
type Arena struct {
	log []any
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{}
}

// Alloc allocates a new T initialized to v, records it in a, and returns a
// pointer to it. Alloc is a free function rather than a method because Go
// methods cannot carry their own type parameters.
func Alloc[T any](a *Arena, v T) *T {
	p := new(T)
	*p = v
	a.log = append(a.log, p)
	return p
}

// Mark returns a checkpoint of the arena's current allocation count.
func (a *Arena) Mark() Mark {
	return Mark(len(a.log))
}

// Release discards every allocation recorded since m was taken. Values
// allocated after m are dropped from the arena's bookkeeping; if nothing
// else references them they become garbage immediately.
func (a *Arena) Release(m Mark) {
	a.log = a.log[:m]
}

// Len reports how many allocations the arena currently tracks.
func (a *Arena) Len() int {
	return len(a.log)
}
