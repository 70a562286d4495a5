package fontset

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/font"
)

// FaceID is a handle for a realized rendering face on a display.
type FaceID int

// NoFace is the face id of no face.
const NoFace FaceID = -1

// Kind is the variant of a FontSpec.
type Kind uint8

// Variants of font specifications
const (
	Absent         Kind = iota // no entry
	NamePattern                // font name, possibly with wildcards
	FamilyRegistry             // (family, registry) pair
	Face                       // realized face; realized fontsets only
)

func (k Kind) String() string {
	switch k {
	case NamePattern:
		return "name"
	case FamilyRegistry:
		return "family-registry"
	case Face:
		return "face"
	}
	return "absent"
}

// FontSpec is an entry of a fontset. Key is the character the entry has
// been defined for, usually a generic character. All characters inheriting
// the entry share its key.
//
// The zero value is an absent entry.
type FontSpec struct {
	Kind     Kind
	Key      charset.Char
	Name     string // NamePattern
	Family   string // FamilyRegistry, may be empty
	Registry string // FamilyRegistry
	Face     FaceID // Face
}

// Name creates a font name pattern entry for key.
func Name(key charset.Char, pattern string) FontSpec {
	return FontSpec{Kind: NamePattern, Key: key, Name: pattern}
}

// Family creates a (family, registry) entry for key.
func Family(key charset.Char, family, registry string) FontSpec {
	return FontSpec{Kind: FamilyRegistry, Key: key, Family: family, Registry: registry}
}

// FaceSpec creates a realized face entry for key.
func FaceSpec(key charset.Char, face FaceID) FontSpec {
	return FontSpec{Kind: Face, Key: key, Face: face}
}

// IsAbsent returns true if spec holds no entry.
func (spec FontSpec) IsAbsent() bool {
	return spec.Kind == Absent
}

// fromFontname creates the entry of a base fontset for a font name. XLFD
// names are split into (foundry-family, registry-encoding), other names are
// kept as patterns.
func fromFontname(key charset.Char, fontname string) FontSpec {
	if fam, reg, ok := font.FamilyRegistry(fontname); ok {
		return Family(key, fam, reg)
	}
	return Name(key, fontname)
}

// withKey returns spec re-keyed to key.
func (spec FontSpec) withKey(key charset.Char) FontSpec {
	spec.Key = key
	return spec
}

// Pattern returns a font name pattern for spec. (family, registry) pairs
// become "-family-*-registry".
func (spec FontSpec) Pattern() string {
	switch spec.Kind {
	case NamePattern:
		return spec.Name
	case FamilyRegistry:
		return "-" + spec.Family + "-*-" + spec.Registry
	}
	return ""
}

func (spec FontSpec) String() string {
	var b strings.Builder
	b.WriteString(spec.Kind.String())
	switch spec.Kind {
	case NamePattern:
		fmt.Fprintf(&b, "(%q)", spec.Name)
	case FamilyRegistry:
		fmt.Fprintf(&b, "(%q, %q)", spec.Family, spec.Registry)
	case Face:
		fmt.Fprintf(&b, "(%d)", spec.Face)
	default:
		return b.String()
	}
	fmt.Fprintf(&b, "@%s", charset.Format(spec.Key))
	return b.String()
}
