package fontset

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/font"
)

// QueryFontset returns the name of a base fontset matching pattern, or ""
// if there is none. pattern may contain wildcards '*' and '?'. If regex is
// set, pattern is a regular expression. An empty pattern never matches.
func (r *Registry) QueryFontset(pattern string, regex bool) (string, error) {
	if pattern == "" {
		return "", nil
	}
	id, err := r.LookupByName(pattern, regex)
	if err != nil || id == NoFontset {
		return "", err
	}
	fs, _ := r.Fontset(id)
	return fs.name, nil
}

// FontListEntry assigns a font name pattern to a charset, given by name.
type FontListEntry struct {
	Charset string
	Font    string
}

// NewFontset creates a base fontset called name and returns its id. The
// font list must contain an entry for charset "ascii". Names of fonts and
// of the fontset are case-folded.
//
// If name matches an existing fontset, either literally or as a pattern
// with wildcards, NewFontset fails with ErrDuplicateFontset.
func (r *Registry) NewFontset(name string, fontlist []FontListEntry) (int, error) {
	name = downcase(name)
	if name == "" {
		return NoFontset, failure(ErrInvalidFontList, "fontset name is empty")
	}
	existing, err := r.QueryFontset(name, false)
	if err != nil {
		return NoFontset, err
	}
	if existing != "" {
		return NoFontset, failure(ErrDuplicateFontset, "fontset `%s' matches the existing fontset `%s'",
			name, existing)
	}
	var ascii string
	var elements []FontSpec
	for _, entry := range fontlist {
		cs := charset.ByName(entry.Charset)
		if cs == nil || entry.Font == "" {
			return NoFontset, failure(ErrInvalidFontList,
				"elements of font list must be pairs of charset and font name: %q=%q",
				entry.Charset, entry.Font)
		}
		fontname := downcase(entry.Font)
		if cs.ID == charset.ASCII {
			ascii = fontname
			continue
		}
		key := cs.Generic()
		elements = append(elements, fromFontname(key, fontname))
	}
	if ascii == "" {
		return NoFontset, failure(ErrInvalidFontList, "no ASCII font in the font list of %s", name)
	}
	id := r.Create(nil, name, NoBase)
	fs := r.fontsets[id]
	fs.ascii = Name(0, ascii)
	for _, elt := range elements {
		fs.Set(elt.Key, elt)
	}
	return id, nil
}

// lookup returns the fontset called name. DefaultFontsetName and "t"
// address the default fontset.
func (r *Registry) lookup(name string) (*Fontset, error) {
	if name == "t" {
		return r.dflt, nil
	}
	id, err := r.LookupByName(name, false)
	if err != nil {
		return nil, err
	}
	fs, ok := r.Fontset(id)
	if !ok {
		return nil, failure(ErrUnknownFontset, "fontset `%s' does not exist", name)
	}
	return fs, nil
}

// SetFontsetFont changes fontset name to use spec for the characters from
// through to (inclusive). For a single character, to should equal from. A
// range must be given by non-generic characters; code points in between
// which are not valid characters are skipped. Single-byte characters cannot
// be changed.
//
// spec is a name pattern or a (family, registry) pair; its key is ignored.
// For the default fontset, the font name must be a registry-encoding name
// like "jisx0208.1983-0". Name patterns in XLFD form are split into
// (family, registry).
//
// All realized fontsets derived from the fontset are cleared, and their
// displays are asked to discard faces for multi-byte characters.
func (r *Registry) SetFontsetFont(name string, from, to charset.Char, spec FontSpec) error {
	fs, err := r.lookup(name)
	if err != nil {
		return err
	}
	if from != to {
		if !charset.Valid(from, false) || !charset.Valid(to, false) {
			return failure(ErrInvalidRange, "character range should be given by non-generic characters")
		}
		if charset.IsSingleByte(from) || charset.IsSingleByte(to) {
			return failure(ErrInvalidRange, "character range %s…%s includes single byte characters",
				charset.Format(from), charset.Format(to))
		}
		if to < from {
			return failure(ErrInvalidRange, "range %s…%s runs backwards",
				charset.Format(from), charset.Format(to))
		}
	}
	for _, c := range []charset.Char{from, to} {
		if !charset.Valid(c, true) {
			return failure(ErrInvalidCharacter, "%#x is not a character", int(c))
		}
		if charset.IsSingleByte(c) {
			return failure(ErrInvalidCharacter, "can't change font for a single byte character")
		}
	}
	elt, err := r.entryFor(fs, from, spec)
	if err != nil {
		return err
	}
	for c := from; c <= to; c++ {
		if c == from || charset.Valid(c, false) {
			fs.Set(c, elt)
		}
	}
	fs.store.Optimize()
	tracer().Infof("fontset %s uses %v for %s…%s", fs.name, elt,
		charset.Format(from), charset.Format(to))
	r.invalidate(fs)
	return nil
}

// entryFor checks and prepares a font specification for fontset fs.
func (r *Registry) entryFor(fs *Fontset, key charset.Char, spec FontSpec) (FontSpec, error) {
	switch spec.Kind {
	case NamePattern:
		spec.Name = downcase(spec.Name)
		if spec.Name == "" {
			return FontSpec{}, failure(ErrInvalidFontList, "empty font name")
		}
		if fs == r.dflt {
			spec = Family(key, "", spec.Name)
		} else {
			spec = fromFontname(key, spec.Name)
		}
	case FamilyRegistry:
		spec.Family, spec.Registry = downcase(spec.Family), downcase(spec.Registry)
	default:
		return FontSpec{}, failure(ErrInvalidFontList, "cannot set %s entry", spec.Kind)
	}
	if fs == r.dflt && !CheckRegistryEncoding(spec.Registry) {
		return FontSpec{}, failure(ErrInvalidRegistryString,
			"%q is not of the form registry-encoding", spec.Registry)
	}
	return spec.withKey(key), nil
}

// invalidate clears all realized fontsets derived from base fontset fs.
func (r *Registry) invalidate(fs *Fontset) {
	for id, realized := range r.fontsets {
		if realized == nil || realized.IsBase() || realized.base != fs.id {
			continue
		}
		realized.clear()
		tracer().Debugf("realized fontset %d cleared", id)
		if realized.owner != nil {
			realized.owner.FreeMultibyteFaces(id)
		}
	}
}

// FontsetFont returns the entry for c in fontset name.
func (r *Registry) FontsetFont(name string, c charset.Char) (FontSpec, error) {
	fs, err := r.lookup(name)
	if err != nil {
		return FontSpec{}, err
	}
	if !charset.Valid(c, true) {
		return FontSpec{}, failure(ErrInvalidCharacter, "%#x is not a character", int(c))
	}
	return fs.Ref(c), nil
}

// FontsetList returns the names of all base fontsets, the default fontset
// first, then ordered by id.
func (r *Registry) FontsetList() []string {
	var names []string
	r.eachBase(func(id int, fs *Fontset) bool {
		names = append(names, fs.name)
		return true
	})
	return names
}

// ListFontsets returns the names of base fontsets matching pattern. If
// size is not 0, only fontsets whose single-byte font on d has a maximum
// bound width of size are listed.
func (r *Registry) ListFontsets(d Display, pattern string, size int) ([]string, error) {
	pattern = downcase(pattern)
	re, err := r.patterns.CompileIfWildcarded(pattern)
	if err != nil {
		return nil, err
	}
	var names []string
	r.eachBase(func(id int, fs *Fontset) bool {
		if re != nil && !re.MatchString(fs.name) || re == nil && pattern != fs.name {
			return true
		}
		if size != 0 {
			info, err := r.LoadFont(d, 0, fs.ascii.Pattern(), id, nil)
			if err != nil || info.Size != size {
				return true
			}
		}
		names = append(names, fs.name)
		return true
	})
	return names, nil
}

// Info describes a fontset on a display.
type Info struct {
	Size   int       // maximum bound width of the single-byte font
	Height int       // height of the single-byte font
	Fonts  []InfoRow // requested and loaded fonts, single-byte entry first
}

// InfoRow tells which font has been requested for a charset, and which
// font has been loaded. Loaded is empty if no font has been loaded yet.
type InfoRow struct {
	Charset   string
	Key       charset.Char
	Requested string
	Loaded    string
}

// FontsetInfo returns information about fontset name on display d. If the
// fontset has not been realized on d, FontsetInfo returns nil.
func (r *Registry) FontsetInfo(name string, d Display) (*Info, error) {
	fs, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	var realized *Fontset
	for _, rf := range r.fontsets {
		if rf != nil && !rf.IsBase() && rf.owner == d && rf.base == fs.id && rf.ascii.Kind == Face {
			realized = rf
			break
		}
	}
	if realized == nil {
		return nil, nil
	}
	info := &Info{}
	ascii := InfoRow{Charset: "ascii", Requested: fs.ascii.Pattern()}
	if fi, ok := d.FaceFont(realized.ascii.Face); ok {
		ascii.Loaded = fi.FullName
		info.Size, info.Height = fi.Size, fi.Height
	}
	info.Fonts = append(info.Fonts, ascii)
	rows := treemap.NewWith(utils.IntComparator)
	fs.store.Walk(func(key charset.Char, spec FontSpec) bool {
		row := InfoRow{Key: key, Requested: spec.Pattern()}
		if cs := charset.Of(key); cs != nil {
			row.Charset = cs.Name
		}
		if elt := realized.store.At(key); elt.Kind == Face {
			if fi, ok := d.FaceFont(elt.Face); ok {
				row.Loaded = fi.FullName
			}
		}
		rows.Put(int(key), row)
		return true
	})
	it := rows.Iterator()
	for it.Next() {
		info.Fonts = append(info.Fonts, it.Value().(InfoRow))
	}
	return info, nil
}

// FontInfo returns information about a font called name, if it has already
// been loaded for display d.
func (r *Registry) FontInfo(name string, d Display) (*font.Info, bool) {
	if r.loader == nil {
		return nil, false
	}
	return r.loader.QueryFont(d, downcase(strings.TrimSpace(name)))
}
