package face

import (
	"strconv"
	"strings"

	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/font"
	"github.com/npillmayer/fontsets/core/fontset"
)

// Face is a realized face of a frame.
type Face struct {
	ID        fontset.FaceID
	Fontset   int            // id of the realized fontset
	ASCIIFace fontset.FaceID // face for single-byte characters
	Charset   charset.ID     // charset the face has been realized for
	Font      *font.Info
}

// Ref returns what a fontset registry needs to know about f.
func (f *Face) Ref() fontset.FaceRef {
	return fontset.FaceRef{ID: f.ID, Fontset: f.Fontset, ASCIIFace: f.ASCIIFace}
}

// IsASCII returns true if f is the face for single-byte characters of its
// fontset.
func (f *Face) IsASCII() bool {
	return f.ID == f.ASCIIFace
}

// Frame is a display with a face cache. It implements fontset.Display.
//
// Face ids are indices into the face cache; ids of freed faces are re-used.
type Frame struct {
	name     string
	fontsets *fontset.Registry
	faces    []*Face
}

var _ fontset.Display = (*Frame)(nil)

// NewFrame creates a frame called name, realizing faces from fontsets of
// registry r.
func NewFrame(name string, r *fontset.Registry) *Frame {
	return &Frame{name: name, fontsets: r}
}

// DisplayName is part of interface fontset.Display.
func (fr *Frame) DisplayName() string {
	return fr.name
}

// Face returns the realized face with id.
func (fr *Frame) Face(id fontset.FaceID) (*Face, bool) {
	if id < 0 || int(id) >= len(fr.faces) || fr.faces[id] == nil {
		return nil, false
	}
	return fr.faces[id], true
}

// Faces returns all realized faces, ordered by id.
func (fr *Frame) Faces() []*Face {
	var faces []*Face
	for _, f := range fr.faces {
		if f != nil {
			faces = append(faces, f)
		}
	}
	return faces
}

// cache enters a new face into the face cache, assigning an id.
func (fr *Frame) cache(f *Face) *Face {
	id := len(fr.faces)
	for i, slot := range fr.faces {
		if slot == nil {
			id = i
			break
		}
	}
	f.ID = fontset.FaceID(id)
	if id == len(fr.faces) {
		fr.faces = append(fr.faces, f)
	} else {
		fr.faces[id] = f
	}
	return f
}

// RealizeASCIIFace realizes a face for single-byte characters from the
// base fontset with id fontsetID, creating a realized fontset for fr. A
// negative fontsetID selects the default fontset.
func (fr *Frame) RealizeASCIIFace(fontsetID int) (*Face, error) {
	rid, err := fr.fontsets.MakeForASCIIFace(fr, fontsetID)
	if err != nil {
		return nil, err
	}
	info, err := fr.fontsets.LoadFont(fr, 0, "", rid, nil)
	if err != nil {
		_ = fr.fontsets.Release(rid)
		return nil, err
	}
	f := fr.cache(&Face{Fontset: rid, Charset: charset.ASCII, Font: info})
	f.ASCIIFace = f.ID
	if err = fr.fontsets.SetASCIIFace(rid, f.ID); err != nil {
		return nil, err
	}
	tracer().Infof("frame %s realized ASCII face %d with %s", fr.name, f.ID, info.FullName)
	return f, nil
}

// ForChar returns a face suitable for displaying c, derived from face f.
// Faces are realized as needed.
func (fr *Frame) ForChar(f *Face, c charset.Char) (*Face, error) {
	if fr.fontsets.FaceSuitableForChar(f.Ref(), c) {
		return f, nil
	}
	id, err := fr.fontsets.FaceForChar(f.Ref(), c)
	if err != nil {
		return nil, err
	}
	face, ok := fr.Face(id)
	if !ok {
		return nil, core.Error(core.EINTERNAL, "face %d not in face cache of %s", id, fr.name)
	}
	return face, nil
}

// RealizeFace is part of interface fontset.Display. It realizes a face for
// c with the font the base fontset of face base asks for. If the fontset
// names a registry only, the family of the ASCII font is requested. Fonts
// for multi-byte characters are requested in the size of the ASCII font.
func (fr *Frame) RealizeFace(c charset.Char, base fontset.FaceID) (fontset.FaceID, error) {
	bf, ok := fr.Face(base)
	if !ok {
		return fontset.NoFace, core.Error(core.EINVALID, "no face with id %d", base)
	}
	spec := fr.fontsets.FontPattern(fr, bf.Fontset, c)
	var fontname string
	switch spec.Kind {
	case fontset.NamePattern:
		fontname = spec.Name
	case fontset.FamilyRegistry:
		var size float64
		if af, ok := fr.Face(bf.ASCIIFace); ok && af.Font != nil {
			if spec.Family == "" {
				spec.Family, _, _ = font.FamilyRegistry(af.Font.FullName)
			}
			if af.Font.TypeCase != nil {
				size = af.Font.TypeCase.PtSize()
			}
		}
		fontname = xlfdName(spec, size)
	default:
		return fontset.NoFace, core.Error(core.EMISSING, "no font for %s", charset.Format(c))
	}
	info, err := fr.fontsets.LoadFont(fr, c, fontname, bf.Fontset, nil)
	if err != nil {
		return fontset.NoFace, err
	}
	id, _, _ := charset.Split(c)
	f := fr.cache(&Face{Fontset: bf.Fontset, ASCIIFace: bf.ASCIIFace, Charset: id, Font: info})
	tracer().Debugf("frame %s realized face %d for %s with %s", fr.name, f.ID,
		charset.Format(c), info.FullName)
	return f.ID, nil
}

const anyXLFD = "-*-*-*-*-*-*-*-*-*-*-*-*-*-*"

// xlfdName builds an XLFD font name from a (family, registry) pair.
func xlfdName(spec fontset.FontSpec, size float64) string {
	x, _ := font.ParseXLFD(anyXLFD)
	if foundry, family, ok := strings.Cut(spec.Family, "-"); ok {
		x.Foundry, x.Family = foundry, family
	} else if spec.Family != "" {
		x.Family = spec.Family
	}
	if size > 0 {
		x.Points = strconv.Itoa(int(size * 10))
	}
	x.Registry, x.Encoding, _ = strings.Cut(spec.Registry, "-")
	if x.Encoding == "" {
		x.Encoding = "*"
	}
	return x.String()
}

// FaceFont is part of interface fontset.Display.
func (fr *Frame) FaceFont(id fontset.FaceID) (*font.Info, bool) {
	if f, ok := fr.Face(id); ok && f.Font != nil {
		return f.Font, true
	}
	return nil, false
}

// FreeMultibyteFaces is part of interface fontset.Display. It frees all
// faces for multi-byte characters using the realized fontset with id
// fontsetID.
func (fr *Frame) FreeMultibyteFaces(fontsetID int) {
	n := 0
	for i, f := range fr.faces {
		if f != nil && f.Fontset == fontsetID && !f.IsASCII() {
			fr.faces[i] = nil
			n++
		}
	}
	tracer().Debugf("frame %s freed %d faces of fontset %d", fr.name, n, fontsetID)
}

// FreeFace frees a face. Freeing the ASCII face of a fontset frees all
// faces of the fontset and releases the realized fontset.
func (fr *Frame) FreeFace(f *Face) {
	if cached, ok := fr.Face(f.ID); !ok || cached != f {
		return
	}
	if !f.IsASCII() {
		fr.faces[f.ID] = nil
		fr.fontsets.ForgetFace(f.Ref())
		return
	}
	fr.FreeMultibyteFaces(f.Fontset)
	fr.faces[f.ID] = nil
	fr.fontsets.ReleaseFace(f.Ref())
	tracer().Infof("frame %s freed ASCII face %d and fontset %d", fr.name, f.ID, f.Fontset)
}
