package wordcorasick

import "errors"

// ErrStateOverflow is returned by Compile when the number of states
// required to represent the given patterns exceeds what the chosen state
// ID type S can represent.
var ErrStateOverflow = errors.New("wordcorasick: too many states for state ID width")

// Compile builds an Automaton from an ordered list of pattern strings.
// Each pattern is tokenized with Tokens; its position in patterns becomes
// its 0-based pattern id. A pattern that tokenizes to no tokens is
// permitted and becomes a match at the start state with length 0 (see
// Match.IsEmpty).
//
// Compile fails only if the automaton would require more states than S can
// address.
func Compile[S StateID](patterns []string) (*Automaton[S], error) {
	a := &Automaton[S]{
		states: make([]state[S], 0, 2),
	}

	// Phase 1: state 0 is the fail sentinel (never entered), state 1 is
	// the start state.
	if _, ok := addState(a); !ok {
		return nil, ErrStateOverflow
	}
	startID, ok := addState(a)
	if !ok {
		return nil, ErrStateOverflow
	}
	a.startID = startID
	// The start state's own failure link points to itself; addState
	// couldn't set this correctly above since a.startID wasn't known yet.
	a.state(startID).fail = startID

	// Phase 2: tokenize every pattern, tracking max length and count.
	tokenized := make([][]string, len(patterns))
	for i, p := range patterns {
		toks := Tokens(p)
		tokenized[i] = toks
		if len(toks) > a.maxPatternLen {
			a.maxPatternLen = len(toks)
		}
	}
	a.patternCount = len(patterns)

	// Phase 3: build the trie.
	for pid, toks := range tokenized {
		prev := a.startID
		for _, t := range toks {
			next := a.state(prev).nextState(t)
			if toInt(next) == 0 {
				var ok bool
				next, ok = addState(a)
				if !ok {
					return nil, ErrStateOverflow
				}
				a.state(prev).setNextState(t, next)
			}
			prev = next
		}
		a.state(prev).matches = append(a.state(prev).matches, matchOutput{
			patternID: pid,
			tokenLen:  len(toks),
		})
	}

	// Phase 4: failure links and output propagation, by BFS.
	fillFailureLinks(a)

	// Phase 5: accounting.
	var heap int
	for i := range a.states {
		heap += a.states[i].heapBytes()
	}
	a.heapBytes = heap

	return a, nil
}

// addState allocates a new state with its failure link defaulted to the
// start state. The first two reserved states are allocated before startID
// is assigned, so their failure link is 0; Compile then points the start
// state's link at itself.
func addState[S StateID](a *Automaton[S]) (S, bool) {
	id, ok := usizeToStateID[S](len(a.states))
	if !ok {
		return id, false
	}
	a.states = append(a.states, state[S]{fail: a.startID})
	return id, true
}

// fillFailureLinks computes every non-start state's failure link and
// propagates match outputs down the failure chain, via breadth-first
// traversal from the start state's children.
func fillFailureLinks[S StateID](a *Automaton[S]) {
	start := a.startID

	queue := make([]S, 0, len(a.states))
	for _, tr := range a.state(start).trans {
		if tr.next != start {
			queue = append(queue, tr.next)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		// Range over a snapshot: appending to a.state(u).matches later in
		// this iteration must not perturb the transitions we're walking.
		trans := a.state(u).trans
		for _, tr := range trans {
			token, v := tr.token, tr.next
			queue = append(queue, v)

			fail := a.state(u).fail
			for toInt(a.state(fail).nextState(token)) == 0 && fail != start {
				fail = a.state(fail).fail
			}
			vFail := a.state(fail).nextState(token)
			if toInt(vFail) == 0 {
				vFail = start
			}
			a.state(v).fail = vFail
			a.state(v).matches = append(a.state(v).matches, a.state(vFail).matches...)
		}
		// Every state that can match the empty pattern reports it at
		// every position, so the start state's own matches (populated only
		// when an empty pattern was among the inputs) are copied onto
		// every reachable state.
		a.state(u).matches = append(a.state(u).matches, a.state(start).matches...)
	}
}
