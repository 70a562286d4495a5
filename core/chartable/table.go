/*
Package chartable implements a sparse, multi-level table keyed by small
integers.

A Table has a fixed capacity. Each of its cells is either empty, holds a
leaf value, or holds an interior sub-table. Every table carries a default
value, which clients return when a deeper key is absent. Storage for the
cells of a table is allocated on first write, so memory use is proportional
to the number of populated tables, not to the key space.

The table is not aware of what its keys mean; package fontset layers
character decomposition on top of it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chartable

// Kind is the variant of a table cell.
type Kind uint8

// Cell variants
const (
	Empty Kind = iota
	Leaf
	Interior
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Interior:
		return "interior"
	}
	return "empty"
}

// Cell is a single position in a table.
type Cell[T any] struct {
	kind  Kind
	value T
	sub   *Table[T]
}

// Kind returns the variant of the cell.
func (c Cell[T]) Kind() Kind { return c.kind }

// Value returns the leaf value of c. For non-leaf cells the zero value of T
// is returned.
func (c Cell[T]) Value() T { return c.value }

// Sub returns the sub-table of an interior cell, or nil.
func (c Cell[T]) Sub() *Table[T] { return c.sub }

// Table is a fixed-capacity sparse table of cells.
type Table[T any] struct {
	size       int
	dflt       T
	hasDefault bool
	cells      []Cell[T]
	count      int
}

// New creates an empty table with room for size cells.
func New[T any](size int) *Table[T] {
	if size <= 0 {
		panic("chartable: table size must be positive")
	}
	return &Table[T]{size: size}
}

// Size returns the capacity of t.
func (t *Table[T]) Size() int {
	return t.size
}

// Len returns the number of non-empty cells of t.
func (t *Table[T]) Len() int {
	return t.count
}

// Default returns the default value of t and whether it has been set.
func (t *Table[T]) Default() (T, bool) {
	return t.dflt, t.hasDefault
}

// SetDefault sets the default value of t.
func (t *Table[T]) SetDefault(v T) {
	t.dflt = v
	t.hasDefault = true
}

// ClearDefault removes the default value of t.
func (t *Table[T]) ClearDefault() {
	var zero T
	t.dflt, t.hasDefault = zero, false
}

// Cell returns the cell at index i. Indices outside the table's capacity
// address an empty cell.
func (t *Table[T]) Cell(i int) Cell[T] {
	if t.cells == nil || i < 0 || i >= t.size {
		return Cell[T]{}
	}
	return t.cells[i]
}

// SetLeaf stores v as a leaf at index i, replacing whatever was there
// before (including a sub-table).
func (t *Table[T]) SetLeaf(i int, v T) {
	t.put(i, Cell[T]{kind: Leaf, value: v})
}

// Descend returns the sub-table at index i, creating it if necessary. A
// leaf at index i is promoted to an interior cell whose sub-table has the
// former leaf value as its default. New sub-tables have capacity size.
func (t *Table[T]) Descend(i int, size int) *Table[T] {
	c := t.Cell(i)
	switch c.kind {
	case Interior:
		return c.sub
	case Leaf:
		sub := New[T](size)
		sub.SetDefault(c.value)
		t.put(i, Cell[T]{kind: Interior, sub: sub})
		return sub
	}
	sub := New[T](size)
	t.put(i, Cell[T]{kind: Interior, sub: sub})
	return sub
}

// Reset empties the cell at index i.
func (t *Table[T]) Reset(i int) {
	t.put(i, Cell[T]{})
}

// ClearRange empties all cells in [lo, hi).
func (t *Table[T]) ClearRange(lo, hi int) {
	if t.cells == nil {
		return
	}
	if lo < 0 {
		lo = 0
	}
	if hi > t.size {
		hi = t.size
	}
	for i := lo; i < hi; i++ {
		t.put(i, Cell[T]{})
	}
}

// Range calls fn for every non-empty cell of t in index order, until fn
// returns false.
func (t *Table[T]) Range(fn func(i int, c Cell[T]) bool) {
	for i, c := range t.cells {
		if c.kind == Empty {
			continue
		}
		if !fn(i, c) {
			return
		}
	}
}

// Copy returns a deep copy of t. Leaf values are copied by assignment.
func (t *Table[T]) Copy() *Table[T] {
	cp := &Table[T]{
		size:       t.size,
		dflt:       t.dflt,
		hasDefault: t.hasDefault,
		count:      t.count,
	}
	if t.cells != nil {
		cp.cells = make([]Cell[T], t.size)
		for i, c := range t.cells {
			if c.kind == Interior {
				c.sub = c.sub.Copy()
			}
			cp.cells[i] = c
		}
	}
	return cp
}

// Uniform checks if all cells in [lo, hi) are leaves with equal values,
// and if the default of t, if set, equals them as well. If so, the common
// value is returned. Clients use this to collapse a sub-table into a single
// leaf.
func (t *Table[T]) Uniform(lo, hi int, eq func(a, b T) bool) (T, bool) {
	var zero T
	if t.cells == nil || lo < 0 || hi > t.size || lo >= hi {
		return zero, false
	}
	first := t.cells[lo]
	if first.kind != Leaf {
		return zero, false
	}
	for i := lo + 1; i < hi; i++ {
		if c := t.cells[i]; c.kind != Leaf || !eq(c.value, first.value) {
			return zero, false
		}
	}
	if t.hasDefault && !eq(t.dflt, first.value) {
		return zero, false
	}
	return first.value, true
}

func (t *Table[T]) put(i int, c Cell[T]) {
	if i < 0 || i >= t.size {
		panic("chartable: index out of range")
	}
	if t.cells == nil {
		if c.kind == Empty {
			return
		}
		t.cells = make([]Cell[T], t.size)
	}
	if t.cells[i].kind == Empty && c.kind != Empty {
		t.count++
	} else if t.cells[i].kind != Empty && c.kind == Empty {
		t.count--
	}
	t.cells[i] = c
}
