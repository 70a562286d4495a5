package fontset

import (
	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/font"
)

// RefViaBase looks up the entry of a realized fontset for c. It asks the
// base fontset for the entry of c first, then reads the realized fontset at
// exactly the position of the base entry's key. The key is returned as
// well. If the base fontset has no entry for c, the result is absent and
// the key is c.
//
// For single-byte characters, the single-byte entry of fs is returned.
func (r *Registry) RefViaBase(fs *Fontset, c charset.Char) (FontSpec, charset.Char) {
	if charset.IsSingleByte(c) {
		return fs.ascii, c
	}
	elt := r.baseOf(fs).Ref(c)
	if elt.IsAbsent() {
		return FontSpec{}, c
	}
	return fs.store.At(elt.Key), elt.Key
}

// FaceSuitableForChar returns true if face may display c.
func (r *Registry) FaceSuitableForChar(face FaceRef, c charset.Char) bool {
	if charset.IsSingleByte(c) {
		return face.ID == face.ASCIIFace
	}
	fs, err := r.realized(face.Fontset)
	if err != nil {
		tracer().Errorf("face %d: %v", face.ID, err)
		return false
	}
	elt, _ := r.RefViaBase(fs, c)
	return elt.Kind == Face && elt.Face == face.ID
}

// FaceForChar returns the id of a face suitable for displaying c, based on
// the fontset of face. If no face has been recorded for c, a new face is
// realized by the display owning the fontset and recorded in the fontset at
// the position of the base fontset's entry for c. If the display fails to
// realize a face, nothing is recorded and the error wraps
// ErrFontLoadFailure.
func (r *Registry) FaceForChar(face FaceRef, c charset.Char) (FaceID, error) {
	if charset.IsSingleByte(c) {
		return face.ASCIIFace, nil
	}
	fs, err := r.realized(face.Fontset)
	if err != nil {
		return NoFace, err
	}
	elt, key := r.RefViaBase(fs, c)
	if elt.Kind == Face {
		return elt.Face, nil
	}
	if fs.owner == nil {
		return NoFace, failure(ErrInvalidFontset, "fontset %d has no display", fs.id)
	}
	id, err := fs.owner.RealizeFace(c, face.ID)
	if err != nil {
		return NoFace, failure(ErrFontLoadFailure, "no face for %s on %s: %v",
			charset.Format(c), fs.owner.DisplayName(), err)
	}
	// realizing a face may have created fontsets
	if fs, err = r.realized(face.Fontset); err != nil {
		return NoFace, err
	}
	fs.Set(key, FaceSpec(key, id))
	tracer().Debugf("fontset %d records face %d at %s", fs.id, id, charset.Format(key))
	return id, nil
}

// MakeForASCIIFace creates a realized fontset for a display from the base
// fontset with id baseID and returns its id. If baseID is a realized
// fontset, its base is used. If baseID is negative, the default fontset is
// the base.
func (r *Registry) MakeForASCIIFace(d Display, baseID int) (int, error) {
	base := DefaultFontset
	if baseID >= 0 {
		fs, ok := r.Fontset(baseID)
		if !ok {
			return NoFontset, failure(ErrInvalidFontset, "no fontset with id %d", baseID)
		}
		base = r.baseOf(fs).id
	}
	return r.Create(d, "", base), nil
}

// SetASCIIFace records the face for single-byte characters of a realized
// fontset.
func (r *Registry) SetASCIIFace(id int, face FaceID) error {
	fs, err := r.realized(id)
	if err != nil {
		return err
	}
	fs.ascii = FaceSpec(0, face)
	return nil
}

// ReleaseFace releases the realized fontset of a face which is being
// discarded. Invalid ids are ignored.
func (r *Registry) ReleaseFace(face FaceRef) {
	if fs, ok := r.Fontset(face.Fontset); ok && !fs.IsBase() {
		_ = r.Release(face.Fontset)
	}
}

// ForgetFace removes all records of a face from its realized fontset. The
// face will be realized again when needed.
func (r *Registry) ForgetFace(face FaceRef) {
	fs, err := r.realized(face.Fontset)
	if err != nil {
		return
	}
	var keys []charset.Char
	fs.store.Walk(func(key charset.Char, spec FontSpec) bool {
		if spec.Kind == Face && spec.Face == face.ID {
			keys = append(keys, key)
		}
		return true
	})
	for _, key := range keys {
		fs.store.Reset(key)
	}
}

// FontsetName returns the name of the fontset with id.
func (r *Registry) FontsetName(id int) string {
	if fs, ok := r.Fontset(id); ok {
		return fs.name
	}
	return ""
}

// ASCIIFontName returns the font name pattern for single-byte characters
// of the fontset with id. For realized fontsets, the pattern of the base
// fontset is returned.
func (r *Registry) ASCIIFontName(id int) string {
	if fs, ok := r.Fontset(id); ok {
		return r.baseOf(fs).ascii.Pattern()
	}
	return ""
}

// FontPattern returns the font specification for c recorded in the base of
// the realized fontset with id. If id is not valid, the default fontset is
// consulted. A name pattern is resolved by opening a font: if the full
// name of the font is an XLFD, its registry is returned with an empty
// family, otherwise a name entry with the full name.
func (r *Registry) FontPattern(d Display, id int, c charset.Char) FontSpec {
	var elt FontSpec
	if fs, ok := r.Fontset(id); ok && r.ValidID(id) {
		elt = r.baseOf(fs).Ref(c)
	} else {
		elt = r.dflt.Ref(c)
	}
	if elt.Kind != NamePattern {
		return elt
	}
	info, err := r.LoadFont(d, c, elt.Name, -1, nil)
	if err != nil {
		tracer().Infof("no font for pattern %q: %v", elt.Name, err)
		return FontSpec{}
	}
	if _, reg, ok := font.FamilyRegistry(info.FullName); ok {
		return Family(elt.Key, "", reg)
	}
	return Name(elt.Key, info.FullName)
}

// LoadFont loads a font named fontname for displaying c on d. If face is
// given, its fontset is used instead of id. If a face for c is already
// recorded in a realized fontset, the font of that face is returned. If
// fontname is empty, the fontset's single-byte font is used for ASCII
// characters.
//
// The font's info receives the charset of c, vertical centering as
// configured, and encodings: either the font's own encoding for all
// charsets, or 8-bit encodings, overridden by configured encoding rules
// matching fontname. If fontname cannot be opened, alternate font names are
// tried.
func (r *Registry) LoadFont(d Display, c charset.Char, fontname string, id int,
	face *FaceRef) (*font.Info, error) {
	//
	if face != nil {
		id = face.Fontset
	}
	if fs, ok := r.Fontset(id); ok && id >= 0 {
		if !fs.IsBase() {
			if elt, _ := r.RefViaBase(fs, c); elt.Kind == Face && fs.owner != nil {
				if info, ok := fs.owner.FaceFont(elt.Face); ok {
					return info, nil
				}
			}
		}
		if fontname == "" && c < 128 {
			fontname = r.baseOf(fs).ascii.Pattern()
		}
	}
	if fontname == "" {
		return nil, failure(ErrFontLoadFailure, "no font name for %s", charset.Format(c))
	}
	if r.loader == nil {
		return nil, failure(ErrFontLoadFailure, "no font loader configured")
	}
	info, err := r.loader.LoadFont(d, fontname)
	if err != nil {
		for _, alt := range r.settings.alternates(fontname) {
			if info, err = r.loader.LoadFont(d, alt); err == nil {
				tracer().Infof("loaded alternate font %s for %s", alt, fontname)
				break
			}
		}
	}
	if err != nil {
		return nil, failure(ErrFontLoadFailure, "cannot load font %s: %v", fontname, err)
	}
	r.decorate(info, c, fontname)
	return info, nil
}

// decorate fills in the fields of info which a font loader does not know.
func (r *Registry) decorate(info *font.Info, c charset.Char, fontname string) {
	id, _, _ := charset.Split(c)
	if id == charset.EightBit {
		id = charset.ASCII
	}
	info.Charset = id
	info.VerticalCentering = r.settings.VerticalCentering != nil &&
		r.settings.VerticalCentering.MatchString(info.FullName)
	if own := info.Encoding[1]; own != font.EncodingNotDecided {
		info.Encoding[0] = own
		for i := charset.MinDimension1; i <= charset.MaxDimension2; i++ {
			info.Encoding[i] = own
		}
		return
	}
	info.Encoding[0] = font.Encoding8Bit
	for i := charset.MinDimension1; i <= charset.MaxDimension2; i++ {
		info.Encoding[i] = font.Encoding8Bit
	}
	for _, rule := range r.settings.Encodings {
		if !rule.Pattern.MatchString(fontname) {
			continue
		}
		for cs, enc := range rule.Encodings {
			info.Encoding[cs] = enc
		}
	}
}
