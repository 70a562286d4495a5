package fontset

import (
	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/font"
)

// Display is a rendering target owning realized faces, e.g. a frame of a
// window system. Realized fontsets belong to a display.
type Display interface {
	// DisplayName identifies the display in messages.
	DisplayName() string
	// RealizeFace realizes a face for character c, based on the attributes
	// of face base. The new face uses the fontset of base.
	RealizeFace(c charset.Char, base FaceID) (FaceID, error)
	// FaceFont returns the font of a realized face.
	FaceFont(face FaceID) (*font.Info, bool)
	// FreeMultibyteFaces discards all faces for multi-byte characters using
	// the realized fontset with id fontset.
	FreeMultibyteFaces(fontset int)
}

// FontLoader opens fonts by name for a display.
type FontLoader interface {
	// LoadFont opens a font by name, which may be a pattern.
	LoadFont(d Display, name string) (*font.Info, error)
	// QueryFont returns the info of a font if it has already been opened.
	QueryFont(d Display, name string) (*font.Info, bool)
}

// FaceRef is what the resolution functions need to know about a realized
// face.
type FaceRef struct {
	ID        FaceID // id of the face
	Fontset   int    // id of the face's realized fontset
	ASCIIFace FaceID // id of the face used for single-byte characters
}

// Fontset ids with special meaning.
const (
	DefaultFontset = -1 // id of the default fontset
	NoBase         = -2 // base id of base fontsets
	NoFontset      = -3 // result of failed lookups
)

// DefaultFontsetName is the name of the default fontset.
const DefaultFontsetName = "fontset-default"

// Fontset is an entry of a fontset registry.
type Fontset struct {
	id    int
	name  string   // empty for realized fontsets
	owner Display  // nil for base fontsets
	ascii FontSpec // entry for all single-byte characters
	base  int      // id of the base fontset, or NoBase
	store *Store
}

// ID returns the id of fs.
func (fs *Fontset) ID() int { return fs.id }

// Name returns the name of fs. Realized fontsets do not have a name.
func (fs *Fontset) Name() string { return fs.name }

// Owner returns the display of a realized fontset, or nil.
func (fs *Fontset) Owner() Display { return fs.owner }

// ASCII returns the entry for single-byte characters.
func (fs *Fontset) ASCII() FontSpec { return fs.ascii }

// Base returns the id of the base fontset of a realized fontset.
// For base fontsets, ok is false.
func (fs *Fontset) Base() (id int, ok bool) {
	return fs.base, fs.base != NoBase
}

// IsBase returns true if fs is a base fontset.
func (fs *Fontset) IsBase() bool {
	return fs.base == NoBase
}

// Ref returns the entry of fs for c.
func (fs *Fontset) Ref(c charset.Char) FontSpec {
	if charset.IsSingleByte(c) {
		return fs.ascii
	}
	return fs.store.Get(c)
}

// Set stores spec as the entry of fs for c.
func (fs *Fontset) Set(c charset.Char, spec FontSpec) {
	if charset.IsSingleByte(c) {
		fs.ascii = spec
		return
	}
	fs.store.Set(c, spec)
}

// clear empties the entries of fs for multi-byte characters.
func (fs *Fontset) clear() {
	fs.store.Clear()
}
