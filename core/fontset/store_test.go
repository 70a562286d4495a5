package fontset

import (
	"testing"

	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const (
	gb2312  charset.ID = 0x91
	latin1  charset.ID = 0x81
	ksc5601 charset.ID = 0x93
)

func TestStoreRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s := NewStore()
	c := charset.Make(gb2312, 0x56, 0x50)
	v := Name(c, "song")
	s.Set(c, v)
	assert.Equal(t, v, s.Get(c))
	assert.True(t, s.Get(charset.Make(gb2312, 0x56, 0x51)).IsAbsent())
	assert.True(t, s.Get(charset.Make(ksc5601, 0x30, 0x21)).IsAbsent())
	d1 := charset.Make(latin1, 0x69, 0)
	s.Set(d1, Name(d1, "latin"))
	assert.Equal(t, "latin", s.Get(d1).Name)
}

func TestStoreGenericInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s := NewStore()
	g := charset.Generic(gb2312)
	v1 := Family(g, "", "gb2312.1980-0")
	s.Set(g, v1)
	for _, c := range []charset.Char{
		charset.Make(gb2312, 0x21, 0x21),
		charset.Make(gb2312, 0x56, 0x50),
		charset.Make(gb2312, 0x7E, 0x7E),
		charset.Make(gb2312, 0x30, 0), // generic row
	} {
		assert.Equal(t, v1, s.Get(c), charset.Format(c))
	}
	assert.True(t, s.Get(charset.Generic(ksc5601)).IsAbsent())
}

func TestStoreSpecificOverridesGeneric(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s := NewStore()
	g := charset.Generic(gb2312)
	v1 := Name(g, "one")
	s.Set(g, v1)
	c := charset.Make(gb2312, 0x56, 0x50)
	v2 := Name(c, "two")
	s.Set(c, v2)
	assert.Equal(t, v2, s.Get(c))
	assert.Equal(t, v1, s.Get(charset.Make(gb2312, 0x56, 0x51)), "same row, other column")
	assert.Equal(t, v1, s.Get(charset.Make(gb2312, 0x30, 0x21)), "other row")
	assert.Equal(t, v1, s.Get(g), "generic character addresses charset default")
	//
	row := charset.Make(gb2312, 0x40, 0)
	v3 := Name(row, "three")
	s.Set(row, v3)
	assert.Equal(t, v3, s.Get(charset.Make(gb2312, 0x40, 0x22)))
	assert.Equal(t, v3, s.Get(row))
	assert.Equal(t, v2, s.Get(c))
}

func TestStoreAtIsExact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s := NewStore()
	g := charset.Generic(gb2312)
	s.Set(g, FaceSpec(g, 7))
	assert.Equal(t, FaceID(7), s.At(g).Face)
	c := charset.Make(gb2312, 0x56, 0x50)
	assert.True(t, s.At(c).IsAbsent(), "At must not fall back to enclosing default")
	assert.Equal(t, FaceID(7), s.Get(c).Face)
	s.Set(c, FaceSpec(c, 8))
	assert.Equal(t, FaceID(8), s.At(c).Face)
	assert.Equal(t, FaceID(7), s.At(g).Face, "promoted leaf is still found at generic key")
	assert.Equal(t, 1, s.top.Len(), "At does not create nodes")
}

func TestStoreReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s := NewStore()
	g := charset.Generic(gb2312)
	c := charset.Make(gb2312, 0x56, 0x50)
	s.Set(g, FaceSpec(g, 7))
	s.Set(c, FaceSpec(c, 8))
	s.Reset(g)
	assert.True(t, s.At(g).IsAbsent())
	assert.Equal(t, FaceID(8), s.At(c).Face, "other positions are kept")
	assert.True(t, s.Get(charset.Make(gb2312, 0x30, 0x21)).IsAbsent())
	s.Reset(c)
	assert.True(t, s.IsEmpty(), "empty sub-tables are removed")
	n := 0
	s.Walk(func(charset.Char, FontSpec) bool { n++; return true })
	assert.Zero(t, n)
	//
	s.Set(g, FaceSpec(g, 9))
	s.Reset(charset.Make(ksc5601, 0x30, 0x21))
	s.Reset(c)
	assert.Equal(t, FaceID(9), s.At(g).Face, "resetting absent positions changes nothing")
	s.Reset(g)
	assert.True(t, s.IsEmpty())
}

func TestStoreClearAndCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s := NewStore()
	c := charset.Make(gb2312, 0x56, 0x50)
	s.Set(c, Name(c, "x"))
	cp := s.Copy()
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.True(t, s.Get(c).IsAbsent())
	assert.Equal(t, "x", cp.Get(c).Name)
}

func TestStoreOptimize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s := NewStore()
	from := charset.Make(latin1, 32, 0)
	v := Name(from, "latin")
	for b := 32; b < 128; b++ {
		s.Set(charset.Make(latin1, b, 0), v)
	}
	s.Optimize()
	cell := s.top.Cell(int(latin1))
	assert.Equal(t, "leaf", cell.Kind().String(), "uniform charset collapses into one entry")
	assert.Equal(t, v, s.Get(charset.Make(latin1, 0x41, 0)))
	assert.Equal(t, v, s.Get(charset.Generic(latin1)))
	//
	s.Set(charset.Make(latin1, 0x41, 0), Name(from, "other"))
	s.Optimize()
	assert.Equal(t, "interior", s.top.Cell(int(latin1)).Kind().String())
}

func TestStoreWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s := NewStore()
	g := charset.Generic(gb2312)
	c := charset.Make(gb2312, 0x56, 0x50)
	k := charset.Generic(ksc5601)
	s.Set(g, Name(g, "g"))
	s.Set(c, Name(c, "c"))
	s.Set(k, Name(k, "k"))
	var keys []charset.Char
	var names []string
	s.Walk(func(key charset.Char, spec FontSpec) bool {
		keys = append(keys, key)
		names = append(names, spec.Name)
		return true
	})
	assert.Equal(t, []string{"g", "c", "k"}, names)
	assert.Equal(t, []charset.Char{g, c, k}, keys)
}
