package wordcorasick

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinder_BasicMultiMatchWithPrefixPattern(t *testing.T) {
	finder, err := NewFinder([]PatternDatum[int]{
		{Pattern: "foo", Datum: 123},
		{Pattern: "bar", Datum: 234},
		{Pattern: "baz", Datum: 345},
		{Pattern: "bar baz", Datum: 456},
	})
	require.NoError(t, err)

	it := finder.FindAll("foo bar baz foobar foo'bar foo,bar")
	count := 0
	for {
		_, _, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, 8, count)

	unique := finder.FindAllUnique("foo bar baz foobar foo'bar foo,bar")
	require.Equal(t, map[int]struct{}{
		123: {}, 234: {}, 345: {}, 456: {},
	}, unique)
}

func TestFinder_OverlappingMatchesAtSharedSuffix(t *testing.T) {
	finder, err := NewFinder([]PatternDatum[int]{
		{Pattern: "lol lol_", Datum: 0},
		{Pattern: "lol lol", Datum: 2},
	})
	require.NoError(t, err)

	it := finder.FindAll("lol lol lol lol_")

	type want struct {
		pattern, end int
		len          int
		datum        int
	}
	expected := []want{
		{pattern: 1, len: 7, end: 7, datum: 2},
		{pattern: 1, len: 7, end: 11, datum: 2},
		{pattern: 0, len: 8, end: 16, datum: 0},
	}

	for i, w := range expected {
		m, d, ok := it.Next()
		require.Truef(t, ok, "match %d: expected a match", i)
		require.Equal(t, w.pattern, m.Pattern(), "match %d pattern", i)
		require.Equal(t, w.end, m.End(), "match %d end", i)
		require.Equal(t, w.len, m.End()-m.Start(), "match %d len", i)
		require.Equal(t, w.datum, *d, "match %d datum", i)
	}
	_, _, ok := it.Next()
	require.False(t, ok, "expected exactly 3 matches")
}

func TestFinder_EmptyPatternMatchesEveryPosition(t *testing.T) {
	finder, err := NewFinder([]PatternDatum[int]{
		{Pattern: "", Datum: 9},
	})
	require.NoError(t, err)

	it := finder.FindAll("a b")

	var ends []int
	for {
		m, d, ok := it.Next()
		if !ok {
			break
		}
		require.True(t, m.IsEmpty())
		require.Equal(t, m.Start(), m.End())
		require.Equal(t, 9, *d)
		ends = append(ends, m.End())
	}
	require.Equal(t, []int{0, 2, 4}, ends)
}

func TestFinder_PunctuationSplitPrefixHit(t *testing.T) {
	finder, err := NewFinder([]PatternDatum[int]{
		{Pattern: "foo", Datum: 1},
	})
	require.NoError(t, err)

	it := finder.FindAll("foo,bar")
	m, d, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 1, *d)
	require.Equal(t, 0, m.Start())
	// The match's reported end is computed from the offset of the token
	// immediately following it, minus one (see DESIGN.md's Open Question
	// 1 writeup): since "," is immediately adjacent to "foo" with no
	// separating whitespace, this lands one character short of "foo"'s
	// true end rather than at it. This is the documented coordinate
	// quirk, reproduced verbatim rather than "fixed".
	require.Equal(t, 2, m.End())

	_, _, ok = it.Next()
	require.False(t, ok)
}

func TestFinder_CaseSensitivity(t *testing.T) {
	finder, err := NewFinder([]PatternDatum[int]{
		{Pattern: "Foo", Datum: 1},
	})
	require.NoError(t, err)

	it := finder.FindAll("foo Foo")
	m, _, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 4, m.Start())
	require.Equal(t, 7, m.End())

	_, _, ok = it.Next()
	require.False(t, ok, "expected exactly one match")
}

func TestFinder_NonASCIIWordCharacters(t *testing.T) {
	finder, err := NewFinder([]PatternDatum[int]{
		{Pattern: "café", Datum: 1},
	})
	require.NoError(t, err)

	it := finder.FindAll("café café")

	var starts []int
	for {
		m, _, ok := it.Next()
		if !ok {
			break
		}
		starts = append(starts, m.Start())
		require.Equal(t, 4, m.End()-m.Start())
	}
	require.Equal(t, []int{0, 5}, starts)
}

func TestFinder_PatternCountAndHeapBytes(t *testing.T) {
	finder, err := NewFinder([]PatternDatum[int]{
		{Pattern: "a", Datum: 1},
		{Pattern: "b", Datum: 2},
	})
	require.NoError(t, err)

	require.Equal(t, 2, finder.PatternCount())
	require.Greater(t, finder.HeapBytes(), 0)
}

func TestFinder_DuplicatePatternsEachFire(t *testing.T) {
	finder, err := NewFinder([]PatternDatum[int]{
		{Pattern: "foo", Datum: 1},
		{Pattern: "foo", Datum: 2},
	})
	require.NoError(t, err)

	it := finder.FindAll("foo")
	seen := map[int]bool{}
	for {
		m, d, ok := it.Next()
		if !ok {
			break
		}
		seen[m.Pattern()] = true
		require.Equal(t, m.Pattern()+1, *d)
	}
	require.True(t, seen[0])
	require.True(t, seen[1])
}
