package font

import (
	"strconv"
	"strings"

	"github.com/npillmayer/fontsets/core/charset"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Encoding tells which code points of a font are used for a charset.
type Encoding int8

// Font encodings. EncodingNotDecided means the font does not tell.
const (
	EncodingNotDecided Encoding = -1
	Encoding7Bit       Encoding = 0 // 0x20..0x7F or 0x2020..0x7F7F
	Encoding8Bit       Encoding = 1 // 0xA0..0xFF or 0xA0A0..0xFFFF
	EncodingMixed1     Encoding = 2 // 0x20A0..0x7FFF
	EncodingMixed2     Encoding = 3 // 0xA020..0xFF7F
)

// Info is the record of a loaded font, as seen by fontsets and faces.
type Info struct {
	Name              string     // name used for opening the font
	FullName          string     // full name of the font, XLFD if possible
	Size              int        // maximum bound width in pixels
	Height            int        // line height in pixels
	BaselineOffset    int        // upward offset from the ASCII baseline
	RelativeCompose   int        // composition control, 0 if unknown
	DefaultAscent     int        // composition control, 0 if unknown
	Charset           charset.ID // charset the font has been loaded for
	VerticalCentering bool       // glyphs are centered vertically on lines
	Encoding          [256]Encoding
	TypeCase          *TypeCase
}

// NewInfo creates a font info record for a type case which has been opened
// by name. Size and Height are taken from the font's metrics. The font
// does not decide on encodings.
func NewInfo(name string, tc *TypeCase) *Info {
	info := &Info{
		Name:     name,
		FullName: name,
		TypeCase: tc,
		Charset:  charset.ASCII,
	}
	for i := range info.Encoding {
		info.Encoding[i] = EncodingNotDecided
	}
	if tc == nil || tc.Face() == nil {
		return info
	}
	m := tc.Face().Metrics()
	info.Height = m.Height.Ceil()
	if sf := tc.ScalableFontParent(); sf != nil && sf.SFNT != nil {
		var buf sfnt.Buffer
		ppem := fixed.Int26_6(tc.PtSize() * 64 * DPI / 72)
		if b, err := sf.SFNT.Bounds(&buf, ppem, xfont.HintingNone); err == nil {
			info.Size = (b.Max.X - b.Min.X).Ceil()
		} else {
			tracer().Errorf("cannot read bounds of font %s: %v", sf.Fontname, err)
		}
	}
	return info
}

// FullXLFD returns the full name of a font opened by name. If name is an
// XLFD, its wildcard fields are filled in from the font and the size;
// otherwise the font's own name is returned. Scalable fonts are Unicode
// fonts, so an unset registry becomes "iso10646-1".
func FullXLFD(name string, sf *ScalableFont, size float64) string {
	x, ok := ParseXLFD(name)
	if !ok {
		if sf != nil && sf.Fontname != "" {
			return sf.Fontname
		}
		return name
	}
	fill := func(field *string, value string) {
		if *field == "*" || strings.ContainsAny(*field, "*?") {
			*field = value
		}
	}
	family := "unknown"
	if sf != nil && sf.SFNT != nil {
		if fam, err := sf.SFNT.Name(nil, sfnt.NameIDFamily); err == nil && fam != "" {
			family = strings.ToLower(fam)
		}
	}
	style, weight := x.FontStyle(), x.FontWeight()
	fill(&x.Foundry, "misc")
	fill(&x.Family, family)
	fill(&x.Weight, weightName(weight))
	fill(&x.Slant, slantName(style))
	fill(&x.SetWidth, "normal")
	fill(&x.AddStyle, "")
	if size > 0 {
		fill(&x.Pixels, strconv.Itoa(int(size)))
		fill(&x.Points, strconv.Itoa(int(size*10)))
	}
	fill(&x.ResX, strconv.Itoa(DPI))
	fill(&x.ResY, strconv.Itoa(DPI))
	fill(&x.Spacing, "p")
	fill(&x.AvgWidth, "0")
	fill(&x.Registry, "iso10646")
	fill(&x.Encoding, "1")
	return x.String()
}

func weightName(w xfont.Weight) string {
	switch {
	case w <= xfont.WeightLight:
		return "light"
	case w >= xfont.WeightBold:
		return "bold"
	}
	return "medium"
}

func slantName(s xfont.Style) string {
	switch s {
	case xfont.StyleItalic:
		return "i"
	case xfont.StyleOblique:
		return "o"
	}
	return "r"
}
