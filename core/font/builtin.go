package font

import (
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type builtinFont struct {
	family string
	name   string
	style  xfont.Style
	weight xfont.Weight
	ttf    []byte
}

// The Go fonts are compiled into every binary.
var builtinFonts = []builtinFont{
	{"go", "Go Regular", xfont.StyleNormal, xfont.WeightNormal, goregular.TTF},
	{"go", "Go Italic", xfont.StyleItalic, xfont.WeightNormal, goitalic.TTF},
	{"go", "Go Medium", xfont.StyleNormal, xfont.WeightMedium, gomedium.TTF},
	{"go", "Go Medium Italic", xfont.StyleItalic, xfont.WeightMedium, gomediumitalic.TTF},
	{"go", "Go Bold", xfont.StyleNormal, xfont.WeightBold, gobold.TTF},
	{"go", "Go Bold Italic", xfont.StyleItalic, xfont.WeightBold, gobolditalic.TTF},
	{"go mono", "Go Mono", xfont.StyleNormal, xfont.WeightNormal, gomono.TTF},
	{"go mono", "Go Mono Italic", xfont.StyleItalic, xfont.WeightNormal, gomonoitalic.TTF},
	{"go mono", "Go Mono Bold", xfont.StyleNormal, xfont.WeightBold, gomonobold.TTF},
	{"go mono", "Go Mono Bold Italic", xfont.StyleItalic, xfont.WeightBold, gomonobolditalic.TTF},
}

var builtinCache = struct {
	sync.Mutex
	fonts map[string]*ScalableFont
}{fonts: make(map[string]*ScalableFont)}

// IsBuiltinFamily returns true if family names one of the compiled-in
// typefaces ("go", "go mono"). Underscores and hyphens count as blanks.
func IsBuiltinFamily(family string) bool {
	family = builtinFamily(family)
	for _, b := range builtinFonts {
		if b.family == family {
			return true
		}
	}
	return false
}

// Builtin returns the compiled-in font of a family closest to style and
// weight. Italic and oblique styles are not distinguished.
func Builtin(family string, style xfont.Style, weight xfont.Weight) (*ScalableFont, bool) {
	family = builtinFamily(family)
	var best *builtinFont
	confidence := NoConfidence - 1
	for i, b := range builtinFonts {
		if b.family != family {
			continue
		}
		c := NoConfidence
		if (b.style == xfont.StyleNormal) == (style == xfont.StyleNormal) {
			c += HighConfidence
		}
		c += weightDistance(b.weight, weight)
		if c > confidence {
			confidence = c
			best = &builtinFonts[i]
		}
	}
	if best == nil {
		return nil, false
	}
	builtinCache.Lock()
	defer builtinCache.Unlock()
	if f, ok := builtinCache.fonts[best.name]; ok {
		return f, true
	}
	f, err := ParseOpenTypeFont(best.ttf)
	if err != nil {
		tracer().Errorf("cannot parse built-in font %s: %v", best.name, err)
		return nil, false
	}
	f.Fontname = best.name
	f.Filepath = "internal"
	builtinCache.fonts[best.name] = f
	return f, true
}

func builtinFamily(family string) string {
	family = strings.ToLower(strings.TrimSpace(family))
	family = strings.NewReplacer("_", " ", "-", " ").Replace(family)
	if family == "gomono" {
		family = "go mono"
	}
	return family
}

func weightDistance(have, want xfont.Weight) MatchConfidence {
	d := int(have) - int(want)
	if d < 0 {
		d = -d
	}
	switch {
	case d == 0:
		return PerfectConfidence
	case d == 1:
		return HighConfidence
	case d <= 3:
		return LowConfidence
	}
	return NoConfidence
}
