package fontset

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/font"
	"github.com/npillmayer/schuko"
)

// Settings controls a fontset registry.
type Settings struct {
	TableSize         int            // initial capacity of the fontset table
	TableGrowth       int            // number of slots added when the table is full
	DefaultRegistry   string         // registry of the default fontset's single-byte entry
	VerticalCentering *regexp.Regexp // font names requiring vertical centering, or nil
	Aliases           *treemap.Map   // alias → fontset name
	Encodings         []EncodingRule // encodings of fonts by name
	Alternates        *treemap.Map   // font name → []string of alternate font names
}

// EncodingRule assigns encodings per charset to fonts whose name matches
// a pattern.
type EncodingRule struct {
	Pattern   *regexp.Regexp
	Encodings map[charset.ID]font.Encoding
}

// DefaultSettings returns settings suitable for most clients.
func DefaultSettings() *Settings {
	return &Settings{
		TableSize:       32,
		TableGrowth:     8,
		DefaultRegistry: "iso8859-1",
		Aliases:         treemap.NewWithStringComparator(),
		Alternates:      treemap.NewWithStringComparator(),
	}
}

// Configuration keys
const (
	confTableSize         = "fontset.table-size"
	confTableGrowth       = "fontset.table-growth"
	confDefaultRegistry   = "fontset.default-registry"
	confVerticalCentering = "fontset.vertical-centering"
	confAliases           = "fontset.aliases"
	confEncodings         = "fontset.encodings"
	confAlternates        = "fontset.alternates"
)

// LoadSettings reads settings from a configuration, starting from the
// defaults. Keys are:
//
//	fontset.table-size          initial capacity of the fontset table
//	fontset.table-growth        growth chunk of the fontset table
//	fontset.default-registry    registry-encoding of the default ASCII font
//	fontset.vertical-centering  regexp of font names needing vertical centering
//	fontset.aliases             alias=fontset;…
//	fontset.encodings           regexp => charset=encoding, …;…
//	fontset.alternates          font=alternate,alternate;…
//
// Malformed values are reported as errors with code EINVALID.
func LoadSettings(conf schuko.Configuration) (*Settings, error) {
	s := DefaultSettings()
	if conf == nil {
		return s, nil
	}
	if conf.IsSet(confTableSize) {
		if n := conf.GetInt(confTableSize); n >= 2 {
			s.TableSize = n
		} else {
			return nil, core.Error(core.EINVALID, "%s must be at least 2", confTableSize)
		}
	}
	if conf.IsSet(confTableGrowth) {
		if n := conf.GetInt(confTableGrowth); n >= 1 {
			s.TableGrowth = n
		} else {
			return nil, core.Error(core.EINVALID, "%s must be positive", confTableGrowth)
		}
	}
	if reg := conf.GetString(confDefaultRegistry); reg != "" {
		if !CheckRegistryEncoding(reg) {
			return nil, failure(ErrInvalidRegistryString, "invalid %s: %s", confDefaultRegistry, reg)
		}
		s.DefaultRegistry = downcase(reg)
	}
	if pat := conf.GetString(confVerticalCentering); pat != "" {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "invalid %s", confVerticalCentering)
		}
		s.VerticalCentering = re
	}
	for _, pair := range splitList(conf.GetString(confAliases), ";") {
		alias, name, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, core.Error(core.EINVALID, "invalid fontset alias: %q", pair)
		}
		s.Aliases.Put(downcase(strings.TrimSpace(alias)), downcase(strings.TrimSpace(name)))
	}
	for _, pair := range splitList(conf.GetString(confAlternates), ";") {
		name, alts, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, core.Error(core.EINVALID, "invalid alternate font names: %q", pair)
		}
		var names []string
		for _, a := range splitList(alts, ",") {
			names = append(names, downcase(a))
		}
		s.Alternates.Put(downcase(strings.TrimSpace(name)), names)
	}
	for _, rule := range splitList(conf.GetString(confEncodings), ";") {
		r, err := parseEncodingRule(rule)
		if err != nil {
			return nil, err
		}
		s.Encodings = append(s.Encodings, r)
	}
	return s, nil
}

// parseEncodingRule parses "regexp => charset=enc, charset=enc".
func parseEncodingRule(rule string) (EncodingRule, error) {
	pat, encs, ok := strings.Cut(rule, "=>")
	if !ok {
		return EncodingRule{}, core.Error(core.EINVALID, "invalid font encoding rule: %q", rule)
	}
	re, err := regexp.Compile("(?i)" + strings.TrimSpace(pat))
	if err != nil {
		return EncodingRule{}, core.WrapError(err, core.EINVALID, "invalid font encoding pattern %q", pat)
	}
	r := EncodingRule{Pattern: re, Encodings: make(map[charset.ID]font.Encoding)}
	for _, enc := range splitList(encs, ",") {
		csname, e, ok := strings.Cut(enc, "=")
		cs := charset.ByName(strings.TrimSpace(csname))
		n, err := strconv.Atoi(strings.TrimSpace(e))
		if !ok || cs == nil || err != nil || n < 0 || n > int(font.EncodingMixed2) {
			return EncodingRule{}, core.Error(core.EINVALID, "invalid font encoding: %q", enc)
		}
		r.Encodings[cs.ID] = font.Encoding(n)
	}
	return r, nil
}

func splitList(s, sep string) []string {
	var items []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// alias returns the fontset name for an alias.
func (s *Settings) alias(name string) (string, bool) {
	if s.Aliases == nil {
		return "", false
	}
	if v, found := s.Aliases.Get(name); found {
		return v.(string), true
	}
	return "", false
}

// alternates returns the alternate names for a font name.
func (s *Settings) alternates(fontname string) []string {
	if s.Alternates == nil {
		return nil
	}
	if v, found := s.Alternates.Get(fontname); found {
		return v.([]string)
	}
	return nil
}

// CheckRegistryEncoding returns true if registry is a valid registry and
// encoding name: it may not start with a hyphen and may contain at most one
// hyphen, e.g. "iso8859-1".
func CheckRegistryEncoding(registry string) bool {
	if registry == "" || registry[0] == '-' {
		return false
	}
	return strings.Count(registry[1:], "-") < 2
}
