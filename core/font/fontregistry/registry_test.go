package fontregistry

import (
	"testing"

	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
)

func TestRegistryTypeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	f, ok := font.Builtin("go", xfont.StyleNormal, xfont.WeightBold)
	require.True(t, ok)
	name := font.NormalizeFontname("go", xfont.StyleNormal, xfont.WeightBold)
	fr.StoreFont(name, f)
	tc, err := fr.TypeCase(name, 11.0)
	require.NoError(t, err)
	assert.Equal(t, "Go Bold", tc.ScalableFontParent().Fontname)
	again, err := fr.TypeCase(name, 11.0)
	require.NoError(t, err)
	assert.Same(t, tc, again, "typecases are cached")
	fr.LogFontList()
}

func TestRegistryFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	tc, err := fr.TypeCase("nonexistent", 12.0)
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	require.NotNil(t, tc)
	assert.Equal(t, "Go Regular", tc.ScalableFontParent().Fontname)
}

func TestRegistryInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	_, ok := fr.Info("go")
	assert.False(t, ok)
	fr.StoreInfo("go", font.NewInfo("go", nil))
	info, ok := fr.Info("go")
	require.True(t, ok)
	assert.Equal(t, "go", info.Name)
}

func TestAppendSize(t *testing.T) {
	assert.Equal(t, "go-12", appendSize("go", 12.0))
	assert.Equal(t, "go-10.5", appendSize("go", 10.5))
}
