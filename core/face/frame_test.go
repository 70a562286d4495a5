package face

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/font"
	"github.com/npillmayer/fontsets/core/font/fontregistry"
	"github.com/npillmayer/fontsets/core/fontset"
	"github.com/npillmayer/fontsets/core/locate/resources"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

const fixedASCII = "-*-fixed-medium-r-normal-*-16-*-*-*-*-*-iso8859-1"

// fakeLoader opens every font except those with "missing" in their name.
type fakeLoader struct {
	loaded []string
}

func (l *fakeLoader) LoadFont(d fontset.Display, name string) (*font.Info, error) {
	if strings.Contains(name, "missing") {
		return nil, fmt.Errorf("no font %s", name)
	}
	l.loaded = append(l.loaded, name)
	return font.NewInfo(name, nil), nil
}

func (l *fakeLoader) QueryFont(d fontset.Display, name string) (*font.Info, bool) {
	return nil, false
}

// --- Test Suite Preparation ------------------------------------------------

type FrameTestEnviron struct {
	suite.Suite
	loader  *fakeLoader
	reg     *fontset.Registry
	frame   *Frame
	fontset int
}

// listen for 'go test' command --> run test methods
func TestFrameFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.faces")
	defer teardown()
	suite.Run(t, new(FrameTestEnviron))
}

// run before each test method
func (env *FrameTestEnviron) SetupTest() {
	env.loader = &fakeLoader{}
	env.reg = fontset.NewRegistry(nil, env.loader)
	id, err := env.reg.NewFontset("std", []fontset.FontListEntry{
		{Charset: "ascii", Font: fixedASCII},
		{Charset: "chinese-gb2312", Font: "-*-fixed-medium-r-normal-*-16-*-*-*-*-*-gb2312.1980-0"},
		{Charset: "korean-ksc5601", Font: "gulim"},
	})
	env.Require().NoError(err)
	env.fontset = id
	env.frame = NewFrame("frame", env.reg)
}

func (env *FrameTestEnviron) char(r rune) charset.Char {
	c, ok := charset.FromRune(r)
	env.Require().True(ok)
	return c
}

// --- Tests -----------------------------------------------------------------

func (env *FrameTestEnviron) TestRealizeASCIIFace() {
	af, err := env.frame.RealizeASCIIFace(env.fontset)
	env.Require().NoError(err)
	env.Equal(fontset.FaceID(0), af.ID)
	env.True(af.IsASCII())
	env.Equal(fixedASCII, af.Font.Name)
	env.Equal([]string{fixedASCII}, env.loader.loaded)
	fs, ok := env.reg.Fontset(af.Fontset)
	env.Require().True(ok)
	env.False(fs.IsBase())
	env.Equal(fontset.FaceSpec(0, af.ID), fs.ASCII())
	//
	_, err = env.frame.RealizeASCIIFace(42)
	env.Error(err)
}

func (env *FrameTestEnviron) TestForChar() {
	af, err := env.frame.RealizeASCIIFace(env.fontset)
	env.Require().NoError(err)
	zhong := env.char('中')
	f1, err := env.frame.ForChar(af, zhong)
	env.Require().NoError(err)
	env.Equal(fontset.FaceID(1), f1.ID)
	env.Equal(charset.ID(0x91), f1.Charset)
	env.Equal(af.ID, f1.ASCIIFace)
	env.Equal("-*-fixed-*-*-*-*-*-*-*-*-*-*-gb2312.1980-0", f1.Font.Name)
	env.Equal(charset.ID(0x91), f1.Font.Charset)
	//
	f2, err := env.frame.ForChar(af, env.char('国'))
	env.Require().NoError(err)
	env.Same(f1, f2, "characters of a charset share a face")
	f3, _ := env.frame.ForChar(f1, zhong)
	env.Same(f1, f3)
	f4, _ := env.frame.ForChar(f1, 'a')
	env.Same(af, f4)
	//
	fk, err := env.frame.ForChar(af, env.char('가'))
	env.Require().NoError(err)
	env.Equal("gulim", fk.Font.Name)
	env.Len(env.frame.Faces(), 3)
}

func (env *FrameTestEnviron) TestRegistryFromASCIIFace() {
	af, err := env.frame.RealizeASCIIFace(env.fontset)
	env.Require().NoError(err)
	f, err := env.frame.ForChar(af, env.char('é'))
	env.Require().NoError(err)
	env.Equal("-*-fixed-*-*-*-*-*-*-*-*-*-*-iso8859-1", f.Font.Name,
		"family is taken from the ASCII font")
}

func (env *FrameTestEnviron) TestInvalidation() {
	af, err := env.frame.RealizeASCIIFace(env.fontset)
	env.Require().NoError(err)
	zhong := env.char('中')
	_, err = env.frame.ForChar(af, zhong)
	env.Require().NoError(err)
	_, err = env.frame.ForChar(af, env.char('가'))
	env.Require().NoError(err)
	//
	env.Require().NoError(env.reg.SetFontsetFont("std", zhong, zhong, fontset.Name(0, "song")))
	env.Equal([]*Face{af}, env.frame.Faces(), "multi-byte faces are freed")
	f, err := env.frame.ForChar(af, zhong)
	env.Require().NoError(err)
	env.Equal(fontset.FaceID(1), f.ID, "face ids are re-used")
	env.Equal("song", f.Font.Name)
}

func (env *FrameTestEnviron) TestLoadFailure() {
	af, err := env.frame.RealizeASCIIFace(env.fontset)
	env.Require().NoError(err)
	jis := charset.Make(0x92, 0x30, 0x21)
	env.Require().NoError(env.reg.SetFontsetFont("std", jis, jis, fontset.Name(0, "missing-font")))
	_, err = env.frame.ForChar(af, jis)
	env.True(errors.Is(err, fontset.ErrFontLoadFailure))
	env.Len(env.frame.Faces(), 1)
}

func (env *FrameTestEnviron) TestFreeFace() {
	af, err := env.frame.RealizeASCIIFace(env.fontset)
	env.Require().NoError(err)
	zhong := env.char('中')
	f1, err := env.frame.ForChar(af, zhong)
	env.Require().NoError(err)
	env.frame.FreeFace(f1)
	_, ok := env.frame.Face(f1.ID)
	env.False(ok)
	f2, err := env.frame.ForChar(af, zhong)
	env.Require().NoError(err)
	env.NotSame(f1, f2, "freed face is realized again")
	//
	env.frame.FreeFace(af)
	env.Empty(env.frame.Faces())
	_, ok = env.reg.Fontset(af.Fontset)
	env.False(ok, "realized fontset is released with its ASCII face")
	_, ok = env.reg.Fontset(env.fontset)
	env.True(ok)
}

func (env *FrameTestEnviron) TestXLFDName() {
	env.Equal("-*-*-*-*-*-*-*-*-*-*-*-*-jisx0208.1983-0",
		xlfdName(fontset.Family(0, "", "jisx0208.1983-0"), 0))
	env.Equal("-misc-go-*-*-*-*-*-120-*-*-*-*-iso10646-1",
		xlfdName(fontset.Family(0, "misc-go", "iso10646-1"), 12))
	env.Equal("-*-song-*-*-*-*-*-*-*-*-*-*-gb2312-*",
		xlfdName(fontset.Family(0, "song", "gb2312"), 0))
}

func (env *FrameTestEnviron) TestWithGoFonts() {
	loader := resources.NewLoader(nil, fontregistry.NewRegistry())
	reg := fontset.NewRegistry(nil, loader)
	id, err := reg.NewFontset("fontset-go", []fontset.FontListEntry{
		{Charset: "ascii", Font: "-*-go-medium-r-normal--*-120-*-*-*-*-iso10646-1"},
		{Charset: "chinese-gb2312", Font: "-*-go mono-*-*-*-*-*-*-*-*-*-*-gb2312.1980-0"},
	})
	env.Require().NoError(err)
	frame := NewFrame("go", reg)
	af, err := frame.RealizeASCIIFace(id)
	env.Require().NoError(err)
	env.Equal("Go Medium", af.Font.TypeCase.ScalableFontParent().Fontname)
	f, err := frame.ForChar(af, env.char('中'))
	env.Require().NoError(err)
	env.Equal("Go Mono", f.Font.TypeCase.ScalableFontParent().Fontname)
	env.Equal(12.0, f.Font.TypeCase.PtSize(), "size of the ASCII font")
	_, registry, ok := font.FamilyRegistry(f.Font.FullName)
	env.True(ok)
	env.Equal("gb2312.1980-0", registry)
}
