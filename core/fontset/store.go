package fontset

import (
	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/chartable"
)

// Capacities of store levels: charset ids on top, byte positions below.
const (
	topLevelSize = 256
	subLevelSize = 128
)

// Store maps multi-byte characters to font specifications. It decomposes a
// character into (charset, byte1, byte2) and uses one table level per
// component. Generic characters address the default of the table at the
// depth where their first unspecified position occurs.
//
// Single-byte characters are not held in a store.
type Store struct {
	top *chartable.Table[FontSpec]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{top: chartable.New[FontSpec](topLevelSize)}
}

// path returns the table indices for c, up to the first unspecified
// position. The first index is the charset id.
func path(c charset.Char) []int {
	id, b1, b2 := charset.Split(c)
	p := make([]int, 1, 3)
	p[0] = int(id)
	for _, b := range [2]int{b1, b2} {
		if b < charset.Unspecified {
			break
		}
		p = append(p, b)
	}
	return p
}

// Get returns the entry for c. If there is no entry for c itself, the
// nearest enclosing default is returned, which may be absent.
func (s *Store) Get(c charset.Char) FontSpec {
	id, b1, b2 := charset.Split(c)
	if id < 0 || int(id) >= topLevelSize {
		return FontSpec{}
	}
	cell := s.top.Cell(int(id))
	var dflt FontSpec
	for _, b := range [2]int{b1, b2} {
		if cell.Kind() != chartable.Interior {
			return valueOr(cell, dflt)
		}
		sub := cell.Sub()
		if d, ok := sub.Default(); ok {
			dflt = d
		}
		if b < charset.Unspecified {
			return dflt
		}
		cell = sub.Cell(b)
	}
	return valueOr(cell, dflt)
}

func valueOr(cell chartable.Cell[FontSpec], dflt FontSpec) FontSpec {
	if cell.Kind() == chartable.Leaf {
		return cell.Value()
	}
	return dflt
}

// Set stores spec for c. Leaves on the way to c are promoted to sub-tables
// defaulting to the former leaf. For a generic character, spec becomes the
// default of the sub-table at the generic position, if there is one.
func (s *Store) Set(c charset.Char, spec FontSpec) {
	p := path(c)
	if p[0] < 0 || p[0] >= topLevelSize {
		return
	}
	tbl, i := s.top, p[0]
	for _, next := range p[1:] {
		tbl, i = tbl.Descend(i, subLevelSize), next
	}
	if cell := tbl.Cell(i); cell.Kind() == chartable.Interior {
		cell.Sub().SetDefault(spec)
		return
	}
	tbl.SetLeaf(i, spec)
}

// At returns the entry stored at exactly the position of key, without
// falling back to enclosing defaults. A generic key addresses the default
// of a sub-table, if there is one at its position. At never modifies s.
func (s *Store) At(key charset.Char) FontSpec {
	p := path(key)
	if p[0] < 0 || p[0] >= topLevelSize {
		return FontSpec{}
	}
	cell := s.top.Cell(p[0])
	for _, i := range p[1:] {
		if cell.Kind() != chartable.Interior {
			return FontSpec{}
		}
		cell = cell.Sub().Cell(i)
	}
	switch cell.Kind() {
	case chartable.Leaf:
		return cell.Value()
	case chartable.Interior:
		d, _ := cell.Sub().Default()
		return d
	}
	return FontSpec{}
}

// Reset removes the entry stored at exactly the position of key, the
// counterpart of At. Entries of other positions are kept. Sub-tables left
// without entries are removed.
func (s *Store) Reset(key charset.Char) {
	p := path(key)
	if p[0] < 0 || p[0] >= topLevelSize {
		return
	}
	tables := []*chartable.Table[FontSpec]{s.top}
	for _, i := range p[:len(p)-1] {
		cell := tables[len(tables)-1].Cell(i)
		if cell.Kind() != chartable.Interior {
			return
		}
		tables = append(tables, cell.Sub())
	}
	tbl, i := tables[len(tables)-1], p[len(p)-1]
	switch cell := tbl.Cell(i); cell.Kind() {
	case chartable.Leaf:
		tbl.Reset(i)
	case chartable.Interior:
		cell.Sub().ClearDefault()
		if cell.Sub().Len() == 0 {
			tbl.Reset(i)
		}
	}
	for d := len(tables) - 1; d > 0; d-- {
		if _, ok := tables[d].Default(); ok || tables[d].Len() > 0 {
			break
		}
		tables[d-1].Reset(p[d-1])
	}
}

// Clear removes all entries of s.
func (s *Store) Clear() {
	s.top.ClearRange(0, topLevelSize)
}

// Copy returns a deep copy of s.
func (s *Store) Copy() *Store {
	return &Store{top: s.top.Copy()}
}

// IsEmpty returns true if s holds no entries.
func (s *Store) IsEmpty() bool {
	return s.top.Len() == 0
}

// Optimize collapses sub-tables which hold the same entry for every
// character of their charset's alphabet into a single entry.
func (s *Store) Optimize() {
	same := func(a, b FontSpec) bool { return a == b }
	s.top.Range(func(id int, cell chartable.Cell[FontSpec]) bool {
		if cell.Kind() != chartable.Interior {
			return true
		}
		cs := charset.ByID(charset.ID(id))
		if cs == nil {
			return true
		}
		lo, hi := alphabet(cs)
		sub := cell.Sub()
		sub.Range(func(b1 int, c chartable.Cell[FontSpec]) bool {
			if c.Kind() == chartable.Interior {
				if v, ok := c.Sub().Uniform(lo, hi, same); ok {
					sub.SetLeaf(b1, v)
				}
			}
			return true
		})
		if v, ok := sub.Uniform(lo, hi, same); ok {
			tracer().Debugf("store collapses %s", cs.Name)
			s.top.SetLeaf(id, v)
		}
		return true
	})
}

// alphabet returns the range of byte values of a charset, [lo, hi).
func alphabet(cs *charset.Charset) (int, int) {
	if cs.Chars == 96 {
		return 32, 128
	}
	return 33, 127
}

// Walk calls fn for every entry of s with its structural key, in key
// order, until fn returns false. Defaults of sub-tables are reported with
// the generic key of their position.
func (s *Store) Walk(fn func(key charset.Char, spec FontSpec) bool) {
	s.top.Range(func(i int, cell chartable.Cell[FontSpec]) bool {
		return walkCell(cell, charset.ID(i), nil, fn)
	})
}

func walkCell(cell chartable.Cell[FontSpec], id charset.ID, bytes []int,
	fn func(key charset.Char, spec FontSpec) bool) bool {
	//
	var key charset.Char
	switch len(bytes) {
	case 0:
		key = charset.Generic(id)
	case 1:
		key = charset.Make(id, bytes[0], 0)
	default:
		key = charset.Make(id, bytes[0], bytes[1])
	}
	switch cell.Kind() {
	case chartable.Leaf:
		return fn(key, cell.Value())
	case chartable.Interior:
		if d, ok := cell.Sub().Default(); ok && !d.IsAbsent() {
			if !fn(key, d) {
				return false
			}
		}
		ok := true
		cell.Sub().Range(func(b int, sub chartable.Cell[FontSpec]) bool {
			ok = walkCell(sub, id, append(bytes[:len(bytes):len(bytes)], b), fn)
			return ok
		})
		return ok
	}
	return true
}
