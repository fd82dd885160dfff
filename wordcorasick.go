// Package wordcorasick implements a multi-pattern, word-aware substring
// search library. Given a fixed set of phrase patterns, it scans an input
// text and reports every (possibly overlapping) occurrence of every
// pattern, matched at the granularity of Unicode word tokens rather than
// raw bytes.
//
// The package is built once from a set of patterns and then queried many
// times; the built Automaton is immutable and safe for concurrent readers.
package wordcorasick

// Match describes a single occurrence of a pattern found while searching a
// haystack. Coordinates are character (code-point) offsets into the
// original haystack string, not byte offsets and not token indices.
type Match struct {
	pattern int
	len     int
	end     int
}

// Pattern returns the identifier of the pattern that matched, derived from
// the position in which it was inserted into the Finder: the first pattern
// has id 0, the second 1, and so on.
func (m Match) Pattern() int {
	return m.pattern
}

// Start returns the starting character offset of the match.
func (m Match) Start() int {
	return m.end - m.len
}

// End returns the ending character offset of the match.
func (m Match) End() int {
	return m.end
}

// IsEmpty reports whether this is a zero-length match, i.e. Start() ==
// End(). This happens for a pattern that tokenizes to no tokens (such as
// the empty string), and also for a match whose single one-character
// token is immediately followed by another token with no separator (e.g.
// pattern "a" in "a,b"), because End() is taken from the offset of the
// next token minus one.
func (m Match) IsEmpty() bool {
	return m.len == 0
}
