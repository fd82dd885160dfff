package wordcorasick

// PatternDatum pairs a pattern string with the caller-supplied datum that
// should be returned alongside any match of that pattern.
type PatternDatum[D comparable] struct {
	Pattern string
	Datum   D
}

// Finder owns a compiled Automaton together with the per-pattern data
// supplied at construction time, and translates the automaton's
// token-indexed matches back into character offsets of the caller's
// original haystack.
type Finder[D comparable] struct {
	aut  *Automaton[uint]
	data map[int]D
}

// NewFinder builds a Finder from an ordered list of (pattern, datum)
// pairs. A pattern's position in patterns becomes its 0-based pattern id,
// which is also the key used to look up its datum. NewFinder fails only if
// compiling the resulting automaton would overflow the native state-ID
// width (practically unreachable).
func NewFinder[D comparable](patterns []PatternDatum[D]) (*Finder[D], error) {
	strs := make([]string, len(patterns))
	for i, p := range patterns {
		strs[i] = p.Pattern
	}

	aut, err := Compile[uint](strs)
	if err != nil {
		return nil, err
	}

	data := make(map[int]D, len(patterns))
	for i, p := range patterns {
		data[i] = p.Datum
	}

	return &Finder[D]{aut: aut, data: data}, nil
}

// PatternCount returns the number of patterns this Finder was built from.
func (f *Finder[D]) PatternCount() int {
	return f.aut.PatternCount()
}

// HeapBytes returns an informational estimate of the heap memory retained
// by this Finder, including both its automaton and its datum map.
func (f *Finder[D]) HeapBytes() int {
	const entrySize = 32 // rough per-entry overhead of map[int]D, informational only
	return f.aut.HeapBytes() + len(f.data)*entrySize
}

// FinderIter iterates the matches produced by Finder.FindAll.
type FinderIter[D comparable] struct {
	finder  *Finder[D]
	inner   *OverlappingIter[uint]
	offsets []int
}

// FindAll tokenizes haystack and returns an iterator over every
// (overlapping) match of every pattern against it, each paired with a
// pointer to that pattern's datum.
func (f *Finder[D]) FindAll(haystack string) *FinderIter[D] {
	withOffsets := TokensWithOffsets(haystack)

	tokens := make([]string, len(withOffsets))
	offsets := make([]int, len(withOffsets)+1)
	for i, to := range withOffsets {
		tokens[i] = to.Token
		offsets[i] = to.Offset
	}
	offsets[len(withOffsets)] = charCount(haystack) + 1

	return &FinderIter[D]{
		finder:  f,
		inner:   NewOverlappingIter(f.aut, tokens),
		offsets: offsets,
	}
}

// Next returns the next reported match together with a pointer to its
// pattern's datum, or false once the haystack is exhausted.
func (it *FinderIter[D]) Next() (Match, *D, bool) {
	raw, ok := it.inner.Next()
	if !ok {
		return Match{}, nil, false
	}

	charStart := it.offsets[raw.tokenEnd-raw.tokenLen]
	var charEnd int
	if raw.tokenLen == 0 {
		// There is no previous token whose end we could approximate; an
		// empty-pattern match is a zero-width point at its own position.
		charEnd = charStart
	} else {
		// This mirrors the upstream offset-map arithmetic verbatim: the
		// offset of the token *after* the match, minus one. It recovers
		// the true end of the match's last token whenever that token is
		// followed by exactly one whitespace character (or is the final
		// token, via the offset map's +1 sentinel) — and is one short of
		// the true end when the following token is immediately adjacent
		// with no separator (e.g. punctuation). This is a known,
		// intentionally preserved quirk; see DESIGN.md.
		charEnd = it.offsets[raw.tokenEnd] - 1
	}

	datum, ok := it.finder.data[raw.patternID]
	if !ok {
		return Match{}, nil, false
	}

	m := Match{
		pattern: raw.patternID,
		len:     charEnd - charStart,
		end:     charEnd,
	}
	return m, &datum, true
}

// FindAllUnique returns the deduplicated set of data whose patterns match
// anywhere in haystack.
func (f *Finder[D]) FindAllUnique(haystack string) map[D]struct{} {
	out := make(map[D]struct{})
	it := f.FindAll(haystack)
	for {
		_, d, ok := it.Next()
		if !ok {
			return out
		}
		out[*d] = struct{}{}
	}
}

func charCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
