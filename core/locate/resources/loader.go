package resources

import (
	"path"
	"strings"

	"github.com/npillmayer/fontsets/core/font"
	"github.com/npillmayer/fontsets/core/font/fontregistry"
	"github.com/npillmayer/fontsets/core/fontset"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	xfont "golang.org/x/image/font"
)

// Loader opens fonts by name. Fonts and their info records are cached in a
// font registry.
type Loader struct {
	conf        schuko.Configuration
	registry    *fontregistry.Registry
	fc          fontConfig
	size        float64           // size for fonts without size information
	substitutes map[string]string // family → family
}

var _ fontset.FontLoader = (*Loader)(nil)

// NewLoader creates a font loader. If conf is nil, an empty configuration is
// used; if registry is nil, the global font registry is used.
//
// X core font families "fixed" and wildcards are substituted by the
// built-in Go fonts. Further substitutions may be configured.
func NewLoader(conf schuko.Configuration, registry *fontregistry.Registry) *Loader {
	if conf == nil {
		conf = testconfig.Conf{}
	}
	if registry == nil {
		registry = fontregistry.GlobalRegistry()
	}
	l := &Loader{
		conf:     conf,
		registry: registry,
		size:     10,
		substitutes: map[string]string{
			"*":     "go",
			"":      "go",
			"fixed": "go mono",
		},
	}
	if n := conf.GetInt("font-size"); n > 0 {
		l.size = float64(n)
	}
	for _, pair := range strings.Split(conf.GetString("font-substitutes"), ";") {
		if family, subst, ok := strings.Cut(pair, "="); ok {
			family = strings.ToLower(strings.TrimSpace(family))
			l.substitutes[family] = strings.ToLower(strings.TrimSpace(subst))
		}
	}
	return l
}

// Registry returns the font registry of l.
func (l *Loader) Registry() *fontregistry.Registry {
	return l.registry
}

// LoadFont opens a font by name for display d. Opening the same name twice
// returns the same info record.
func (l *Loader) LoadFont(d fontset.Display, name string) (*font.Info, error) {
	key := infoKey(d, name)
	if info, ok := l.registry.Info(key); ok {
		return info, nil
	}
	family, style, weight, size := l.describe(name)
	tracer().Debugf("open font %s as %s/%d/%d at %.1f", name, family, style, weight, size)
	tc, err := l.ResolveTypeCase(family, style, weight, size).TypeCase()
	if err != nil {
		return nil, err
	}
	info := font.NewInfo(name, tc)
	info.FullName = font.FullXLFD(name, tc.ScalableFontParent(), tc.PtSize())
	l.registry.StoreInfo(key, info)
	tracer().Infof("opened font %s as %s", name, info.FullName)
	return info, nil
}

// QueryFont returns the info record of a font if it has already been opened
// by name for display d.
func (l *Loader) QueryFont(d fontset.Display, name string) (*font.Info, bool) {
	return l.registry.Info(infoKey(d, name))
}

func infoKey(d fontset.Display, name string) string {
	if d == nil {
		return name
	}
	return d.DisplayName() + "|" + name
}

// describe derives family, style, weight and size from a font name.
func (l *Loader) describe(name string) (family string, style xfont.Style, weight xfont.Weight, size float64) {
	size = l.size
	if x, ok := font.ParseXLFD(name); ok {
		family, style, weight = x.Family, x.FontStyle(), x.FontWeight()
		if s := x.Size(); s > 0 {
			size = s
		}
	} else if isFontFile(name) {
		style, weight = font.GuessStyleAndWeight(name)
		return name, style, weight, size
	} else {
		family, style, weight = splitFontname(name)
	}
	family = strings.ToLower(strings.TrimSpace(family))
	if font.HasWildcard(family) {
		family = "*"
	}
	if subst, ok := l.substitutes[family]; ok {
		family = subst
	}
	return
}

func isFontFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".ttf" || ext == ".otf"
}

var variantWords = map[string]bool{
	"regular": true, "normal": true, "roman": true, "medium": true,
	"italic": true, "oblique": true, "bold": true, "black": true, "light": true,
}

// splitFontname splits a font name like "Go Mono Bold Italic" into family,
// style and weight.
func splitFontname(name string) (string, xfont.Style, xfont.Weight) {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	n := len(fields)
	for n > 1 && variantWords[fields[n-1]] {
		n--
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	for _, w := range fields[n:] {
		switch w {
		case "italic", "oblique":
			style = xfont.StyleItalic
		case "bold", "black":
			weight = xfont.WeightBold
		case "light":
			weight = xfont.WeightLight
		case "medium":
			weight = xfont.WeightMedium
		}
	}
	return strings.Join(fields[:n], " "), style, weight
}
