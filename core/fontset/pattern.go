package fontset

import (
	"regexp"
	"strings"

	"github.com/npillmayer/fontsets/core"
)

// PatternMatcher translates fontset name patterns with wildcards into
// regular expressions. It caches the most recently compiled pattern.
//
// The zero value is ready to use.
type PatternMatcher struct {
	pattern string
	re      *regexp.Regexp
}

// HasWildcard returns true if pattern contains '*' or '?'.
func HasWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, "*?")
}

// CompileIfWildcarded returns a case-insensitive regular expression for a
// pattern containing '*' (any sequence) or '?' (any character). All other
// characters are copied literally, i.e. regular expression operators in
// pattern are not escaped. The expression is anchored at both ends.
//
// If pattern has no wildcards, CompileIfWildcarded returns nil, and
// clients should compare names literally.
func (pm *PatternMatcher) CompileIfWildcarded(pattern string) (*regexp.Regexp, error) {
	if !HasWildcard(pattern) {
		return nil, nil
	}
	if pm.re != nil && pm.pattern == pattern {
		return pm.re, nil
	}
	var b strings.Builder
	b.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('$')
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid fontset name pattern %q", pattern)
	}
	tracer().Debugf("fontset pattern %q compiled to %s", pattern, re)
	pm.pattern, pm.re = pattern, re
	return re, nil
}
