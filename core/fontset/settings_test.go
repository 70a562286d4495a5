package fontset

import (
	"errors"
	"testing"

	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/font"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	s, err := LoadSettings(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, 32, s.TableSize)
	assert.Equal(t, 8, s.TableGrowth)
	assert.Equal(t, "iso8859-1", s.DefaultRegistry)
	assert.Nil(t, s.VerticalCentering)
	assert.Empty(t, s.Encodings)
}

func TestLoadSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	conf := testconfig.Conf{
		"fontset.table-size":         4,
		"fontset.table-growth":       2,
		"fontset.default-registry":   "ISO10646-1",
		"fontset.vertical-centering": "gb2312|big5",
		"fontset.aliases":            "startup = fontset-startup; std=Fontset-Standard",
		"fontset.encodings":          "-gb2312 => chinese-gb2312=0, korean-ksc5601=1; ^song => chinese-gb2312=2",
		"fontset.alternates":         "song=Kai,fixed",
	}
	s, err := LoadSettings(conf)
	require.NoError(t, err)
	assert.Equal(t, 4, s.TableSize)
	assert.Equal(t, 2, s.TableGrowth)
	assert.Equal(t, "iso10646-1", s.DefaultRegistry)
	assert.True(t, s.VerticalCentering.MatchString("-misc-fixed-*-GB2312.1980-0"))
	target, ok := s.alias("std")
	assert.True(t, ok)
	assert.Equal(t, "fontset-standard", target)
	assert.Equal(t, []string{"kai", "fixed"}, s.alternates("song"))
	require.Len(t, s.Encodings, 2)
	assert.True(t, s.Encodings[0].Pattern.MatchString("-misc-fixed-GB2312.1980-0"))
	assert.Equal(t, font.Encoding7Bit, s.Encodings[0].Encodings[gb2312])
	assert.Equal(t, font.Encoding8Bit, s.Encodings[0].Encodings[ksc5601])
	assert.Equal(t, font.EncodingMixed1, s.Encodings[1].Encodings[gb2312])
	//
	r := NewRegistry(s, nil)
	assert.Equal(t, Family(0, "", "iso10646-1"), r.Default().ASCII())
	for i := 0; i < 4; i++ {
		r.Create(nil, "x", NoBase)
	}
	assert.Equal(t, 6, len(r.fontsets), "table grows by the configured chunk")
}

func TestLoadSettingsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.core")
	defer teardown()
	//
	for _, conf := range []testconfig.Conf{
		{"fontset.table-size": 1},
		{"fontset.table-growth": 0},
		{"fontset.vertical-centering": "("},
		{"fontset.aliases": "startup"},
		{"fontset.encodings": "gb2312"},
		{"fontset.encodings": "gb2312 => klingon=1"},
		{"fontset.encodings": "gb2312 => chinese-gb2312=7"},
		{"fontset.alternates": "song"},
	} {
		_, err := LoadSettings(conf)
		assert.Equal(t, core.EINVALID, core.Code(err), "%v", conf)
	}
	_, err := LoadSettings(testconfig.Conf{"fontset.default-registry": "iso-8859-1"})
	assert.True(t, errors.Is(err, ErrInvalidRegistryString))
}

func TestCheckRegistryEncoding(t *testing.T) {
	for reg, ok := range map[string]bool{
		"iso8859-1":       true,
		"jisx0208.1983-0": true,
		"gb2312":          true,
		"":                false,
		"-iso8859-1":      false,
		"iso-8859-1":      false,
	} {
		assert.Equal(t, ok, CheckRegistryEncoding(reg), reg)
	}
}
