package font

import (
	"strconv"
	"strings"

	xfont "golang.org/x/image/font"
)

// XLFD is an X Logical Font Description, split into its 14 fields.
// Unset fields hold "*".
//
//	-foundry-family-weight-slant-setwidth-addstyle-pixels-points-resx-resy-spacing-avgwidth-registry-encoding
type XLFD struct {
	Foundry, Family, Weight, Slant, SetWidth, AddStyle string
	Pixels, Points, ResX, ResY, Spacing, AvgWidth      string
	Registry, Encoding                                 string
}

// xlfdFields is the number of hyphens in a well-formed XLFD name.
const xlfdFields = 14

// ParseXLFD splits an XLFD font name into its fields. If name does not
// have exactly 14 hyphen-separated fields, ParseXLFD returns false.
func ParseXLFD(name string) (XLFD, bool) {
	if !strings.HasPrefix(name, "-") || strings.Count(name, "-") != xlfdFields {
		return XLFD{}, false
	}
	f := strings.Split(name[1:], "-")
	for i := range f {
		if f[i] == "" {
			f[i] = "*"
		}
	}
	return XLFD{
		Foundry: f[0], Family: f[1], Weight: f[2], Slant: f[3],
		SetWidth: f[4], AddStyle: f[5], Pixels: f[6], Points: f[7],
		ResX: f[8], ResY: f[9], Spacing: f[10], AvgWidth: f[11],
		Registry: f[12], Encoding: f[13],
	}, true
}

func (x XLFD) String() string {
	return "-" + strings.Join([]string{
		x.Foundry, x.Family, x.Weight, x.Slant, x.SetWidth, x.AddStyle,
		x.Pixels, x.Points, x.ResX, x.ResY, x.Spacing, x.AvgWidth,
		x.Registry, x.Encoding,
	}, "-")
}

// FontStyle returns the font style denoted by the slant field.
func (x XLFD) FontStyle() xfont.Style {
	switch strings.ToLower(x.Slant) {
	case "i":
		return xfont.StyleItalic
	case "o":
		return xfont.StyleOblique
	}
	return xfont.StyleNormal
}

// FontWeight returns the font weight denoted by the weight field.
// Wildcards and unknown weight names yield WeightNormal.
func (x XLFD) FontWeight() xfont.Weight {
	switch strings.ToLower(x.Weight) {
	case "thin":
		return xfont.WeightThin
	case "extralight", "ultralight":
		return xfont.WeightExtraLight
	case "light":
		return xfont.WeightLight
	case "medium":
		return xfont.WeightMedium
	case "demibold", "semibold":
		return xfont.WeightSemiBold
	case "bold":
		return xfont.WeightBold
	case "extrabold", "ultrabold":
		return xfont.WeightExtraBold
	case "black", "heavy":
		return xfont.WeightBlack
	}
	return xfont.WeightNormal
}

// Size returns the size in points requested by x, or 0 if x does not
// request a size. Points are given in tenths, pixels are taken as points.
func (x XLFD) Size() float64 {
	if p, err := strconv.Atoi(x.Points); err == nil && p > 0 {
		return float64(p) / 10
	}
	if p, err := strconv.Atoi(x.Pixels); err == nil && p > 0 {
		return float64(p)
	}
	return 0
}

// FamilyRegistry splits an XLFD name into its foundry-family part and its
// registry-encoding part, e.g.
//
//	"-adobe-courier-medium-r-*-*-12-*-*-*-*-*-iso8859-1"
//	→ "adobe-courier", "iso8859-1"
//
// If name has not exactly 14 hyphens, ok is false.
func FamilyRegistry(name string) (family, registry string, ok bool) {
	var sep [xlfdFields]int
	n := 0
	for i := 0; i < len(name) && n <= xlfdFields; i++ {
		if name[i] == '-' {
			if n == xlfdFields {
				return "", "", false
			}
			sep[n] = i + 1
			n++
		}
	}
	if n != xlfdFields {
		return "", "", false
	}
	return name[sep[0] : sep[2]-1], name[sep[12]:], true
}

// HasWildcard returns true if a font name contains '*' or '?'.
func HasWildcard(name string) bool {
	return strings.ContainsAny(name, "*?")
}
