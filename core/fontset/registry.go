package fontset

import (
	"regexp"

	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/charset"
)

// Registry is a table of fontsets, indexed by fontset id.
//
// The last slot of the table is always empty. Ids are valid if they are
// smaller than the table size minus one.
type Registry struct {
	settings *Settings
	loader   FontLoader
	fontsets []*Fontset
	next     int      // hint for the next free id
	dflt     *Fontset // the default fontset, not part of the table
	patterns PatternMatcher
}

// NewRegistry creates a fontset registry with a default fontset. If
// settings is nil, DefaultSettings are used. loader may be nil for clients
// which do not load fonts.
func NewRegistry(settings *Settings, loader FontLoader) *Registry {
	if settings == nil {
		settings = DefaultSettings()
	}
	r := &Registry{
		settings: settings,
		loader:   loader,
		fontsets: make([]*Fontset, settings.TableSize),
	}
	r.CreateDefaultFontset()
	return r
}

// Settings returns the settings r has been created with.
func (r *Registry) Settings() *Settings {
	return r.settings
}

// CreateDefaultFontset (re-)creates the default fontset. Its single-byte
// entry is a (family, registry) pair with an empty family and the configured
// default registry. Every multi-byte charset is mapped to its X registry.
func (r *Registry) CreateDefaultFontset() *Fontset {
	fs := &Fontset{
		id:    DefaultFontset,
		name:  DefaultFontsetName,
		ascii: Family(0, "", r.settings.DefaultRegistry),
		base:  NoBase,
		store: NewStore(),
	}
	for _, cs := range charset.All() {
		if cs.Registry != "" {
			fs.store.Set(cs.Generic(), Family(cs.Generic(), "", cs.Registry))
		}
	}
	r.dflt = fs
	tracer().Infof("default fontset created")
	return fs
}

// Default returns the default fontset.
func (r *Registry) Default() *Fontset {
	return r.dflt
}

// ValidID returns true if id is in the range of fontset ids. It does not
// check if a fontset with id exists.
func (r *Registry) ValidID(id int) bool {
	return id >= 0 && id < len(r.fontsets)-1
}

// Fontset returns the fontset with id. DefaultFontset addresses the
// default fontset.
//
// References to fontsets are invalidated by Create. Clients should hold
// fontset ids and look up fontsets when needed.
func (r *Registry) Fontset(id int) (*Fontset, bool) {
	if id == DefaultFontset {
		return r.dflt, true
	}
	if !r.ValidID(id) || r.fontsets[id] == nil {
		return nil, false
	}
	return r.fontsets[id], true
}

// Create creates a fontset and returns its id. If base is NoBase, a base
// fontset with name is created as a copy of the default fontset. Otherwise
// an empty realized fontset for display owner is created, with base as its
// base fontset.
func (r *Registry) Create(owner Display, name string, base int) int {
	id := r.next
	for r.fontsets[id] != nil { // last slot is empty
		id++
	}
	if id+1 == len(r.fontsets) {
		grown := make([]*Fontset, len(r.fontsets)+r.settings.TableGrowth)
		copy(grown, r.fontsets)
		r.fontsets = grown
		tracer().Debugf("fontset table grown to %d", len(grown))
	}
	fs := &Fontset{
		id:    id,
		name:  name,
		owner: owner,
		base:  base,
	}
	if base == NoBase {
		fs.ascii = r.dflt.ascii
		fs.store = r.dflt.store.Copy()
		tracer().Infof("base fontset %d created: %s", id, name)
	} else {
		fs.store = NewStore()
		tracer().Debugf("realized fontset %d created, based on %d", id, base)
	}
	r.fontsets[id] = fs
	r.next = id + 1
	return id
}

// Release removes the fontset with id from r. Its id will be re-used.
//
// Clients must not release fontsets still referenced by faces.
func (r *Registry) Release(id int) error {
	if !r.ValidID(id) || r.fontsets[id] == nil {
		return failure(ErrInvalidFontset, "cannot release fontset %d", id)
	}
	r.fontsets[id] = nil
	if id < r.next {
		r.next = id
	}
	tracer().Debugf("fontset %d released", id)
	return nil
}

// LookupByName returns the id of the first base fontset called name, or
// NoFontset. The default fontset comes first. Names are compared
// case-insensitively. If regex is set, name is a regular expression.
// Otherwise name may be an alias, or a pattern with wildcards.
func (r *Registry) LookupByName(name string, regex bool) (int, error) {
	var re *regexp.Regexp
	var err error
	if !regex {
		name = downcase(name)
	}
	if regex {
		if re, err = regexp.Compile("(?i)" + name); err != nil {
			return NoFontset, core.WrapError(err, core.EINVALID, "invalid regular expression %q", name)
		}
	} else if target, ok := r.settings.alias(name); ok {
		name = target
	} else if re, err = r.patterns.CompileIfWildcarded(name); err != nil {
		return NoFontset, err
	}
	found := NoFontset
	r.eachBase(func(id int, fs *Fontset) bool {
		if re != nil && re.MatchString(fs.name) || re == nil && fs.name == name {
			found = id
			return false
		}
		return true
	})
	return found, nil
}

// eachBase calls fn for the default fontset, then for every other base
// fontset in order of ids, until fn returns false.
func (r *Registry) eachBase(fn func(id int, fs *Fontset) bool) {
	if !fn(DefaultFontset, r.dflt) {
		return
	}
	for id, fs := range r.fontsets {
		if fs != nil && fs.IsBase() && !fn(id, fs) {
			return
		}
	}
}

// realized returns the fontset with id, which has to be a realized fontset.
func (r *Registry) realized(id int) (*Fontset, error) {
	fs, ok := r.Fontset(id)
	if !ok || fs.IsBase() {
		return nil, failure(ErrInvalidFontset, "%d is not a realized fontset", id)
	}
	return fs, nil
}

// baseOf returns the base fontset of a realized fontset.
func (r *Registry) baseOf(fs *Fontset) *Fontset {
	if fs.IsBase() {
		return fs
	}
	if b, ok := r.Fontset(fs.base); ok {
		return b
	}
	return r.dflt
}
