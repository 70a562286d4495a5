package charset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSplitMake(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	c := Make(0x92, 0x30, 0x21) // japanese-jisx0208
	id, b1, b2 := Split(c)
	assert.Equal(t, ID(0x92), id)
	assert.Equal(t, 0x30, b1)
	assert.Equal(t, 0x21, b2)
	assert.True(t, Valid(c, false))
	assert.False(t, IsGeneric(c))
	//
	c = Make(0x81, 0x69, 0) // latin-iso8859-1, dimension 1
	id, b1, _ = Split(c)
	assert.Equal(t, ID(0x81), id)
	assert.Equal(t, 0x69, b1)
	assert.True(t, Valid(c, false))
}

func TestSingleByte(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	assert.True(t, IsSingleByte('A'))
	assert.True(t, IsSingleByte(255))
	assert.False(t, IsSingleByte(256))
	id, b1, _ := Split('A')
	assert.Equal(t, ASCII, id)
	assert.Equal(t, int('A'), b1)
	id, _, _ = Split(0xE9)
	assert.Equal(t, EightBit, id)
}

func TestGenericCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	g := Generic(0x91)
	assert.True(t, IsGeneric(g))
	assert.True(t, Valid(g, true))
	assert.False(t, Valid(g, false), "generic character must not be valid as a concrete character")
	//
	row := Make(0x91, 0x30, 0) // one row of chinese-gb2312
	assert.True(t, IsGeneric(row))
	assert.True(t, Valid(row, true))
	//
	// byte2 specified while byte1 is not
	bad := Char(0x91-0x8F)<<14 | 0x21
	assert.False(t, Valid(bad, true))
	//
	// bytes below 32 are normalized to the unspecified position
	assert.Equal(t, g, Make(0x91, 5, 17))
}

func TestInvalidCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	assert.False(t, Valid(0x1234, true), "gap between dimension-1 and dimension-2 ranges")
	assert.False(t, Valid(MaxChar+1, true))
	assert.False(t, Valid(Make(0x8B, 0x40, 0), false), "unassigned charset id")
	assert.False(t, Valid(Make(0x91, 0x7F, 0x21), false), "outside of 94-character alphabet")
	assert.True(t, Valid(Make(0x81, 0x7F, 0), false), "inside of 96-character alphabet")
}

func TestCharsetNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	cs := ByName("Japanese-JISX0208")
	if assert.NotNil(t, cs) {
		assert.Equal(t, ID(0x92), cs.ID)
		assert.Equal(t, 2, cs.Dimension)
		assert.Equal(t, "jisx0208.1983-0", cs.Registry)
	}
	assert.Nil(t, ByName("klingon"))
	names := Complete("japanese")
	assert.Equal(t, []string{"japanese-jisx0208", "japanese-jisx0208-1978", "japanese-jisx0212"}, names)
	assert.Equal(t, "chinese-gb2312", Of(Make(0x91, 0x56, 0x50)).Name)
	assert.Equal(t, "ascii", Of('x').Name)
}

func TestFromRune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	c, ok := FromRune('A')
	assert.True(t, ok)
	assert.Equal(t, Char('A'), c)
	//
	c, ok = FromRune('é') // 0xE9 in ISO 8859-1
	assert.True(t, ok)
	assert.Equal(t, Make(0x81, 0x69, 0), c)
	//
	c, ok = FromRune('中') // 0xD6D0 in GB2312
	assert.True(t, ok)
	assert.Equal(t, Make(0x91, 0x56, 0x50), c)
	//
	c, ok = FromRune('가') // 0xB0A1 in KS C 5601
	assert.True(t, ok)
	assert.Equal(t, Make(0x93, 0x30, 0x21), c)
	//
	c, ok = FromRune('ｱ') // half-width katakana, 0xB1 in Shift_JIS
	assert.True(t, ok)
	assert.Equal(t, Make(0x89, 0x31, 0), c)
	//
	_, ok = FromRune('😀')
	assert.False(t, ok)
}

func TestFromRuneForCharset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	c, ok := ByName("japanese-jisx0208").FromRune('日') // 0xC6FC in EUC-JP
	assert.True(t, ok)
	assert.Equal(t, Make(0x92, 0x46, 0x7C), c)
	//
	c, ok = ByName("chinese-big5-1").FromRune('中') // 0xA4A4 in Big5
	assert.True(t, ok)
	assert.Equal(t, Make(0x98, 38, 100), c)
	//
	_, ok = ByName("chinese-big5-2").FromRune('中')
	assert.False(t, ok, "lead byte 0xA4 belongs to the first Big5 plane")
	//
	_, ok = ByName("latin-jisx0201").FromRune('A')
	assert.False(t, ok, "charset without encoding cannot map runes")
}

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	assert.Equal(t, "chinese-gb2312/86/80", Format(Make(0x91, 86, 80)))
	assert.Equal(t, "chinese-gb2312/*/*", Format(Generic(0x91)))
	assert.Equal(t, "latin-iso8859-1/105", Format(Make(0x81, 105, 0)))
}
