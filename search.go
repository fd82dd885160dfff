package wordcorasick

// OverlappingIter walks a tokenized haystack against a compiled Automaton,
// yielding every (possibly overlapping) match in increasing token-end
// order. It holds no resources beyond its own cursors and is safe to drop
// at any time.
type OverlappingIter[S StateID] struct {
	aut         *Automaton[S]
	haystack    []string
	tokenCursor int
	stateID     S
	matchCursor int
}

// NewOverlappingIter builds an iterator that searches haystack (already
// tokenized) against aut, starting at aut's start state.
func NewOverlappingIter[S StateID](aut *Automaton[S], haystack []string) *OverlappingIter[S] {
	return &OverlappingIter[S]{
		aut:      aut,
		haystack: haystack,
		stateID:  aut.StartState(),
	}
}

// Next returns the next raw (token-coordinate) match, or false once the
// haystack is exhausted.
func (it *OverlappingIter[S]) Next() (rawMatch, bool) {
	if m, ok := it.aut.getMatch(it.stateID, it.matchCursor, it.tokenCursor); ok {
		it.matchCursor++
		return m, true
	}

	it.matchCursor = 0
	for it.tokenCursor < len(it.haystack) {
		t := it.haystack[it.tokenCursor]
		it.stateID = it.aut.step(it.stateID, t)
		it.tokenCursor++

		if it.aut.MatchCount(it.stateID) > 0 {
			m, _ := it.aut.getMatch(it.stateID, 0, it.tokenCursor)
			it.matchCursor = 1
			return m, true
		}
	}
	return rawMatch{}, false
}
