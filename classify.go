package wordcorasick

import "sort"

// wordRange is an inclusive code-point range.
type wordRange struct {
	lo, hi rune
}

// perlWord is a sorted, non-overlapping table of code-point ranges above
// U+007F that belong to the Perl \w character class (letters, marks,
// decimal digits, and connector punctuation). It is consumed as a pure,
// static dataset — the same role `unicode_tables::perl_word::PERL_WORD`
// plays in the upstream implementation this package is modeled on.
var perlWord = []wordRange{
	{0x00AA, 0x00AA}, // FEMININE ORDINAL INDICATOR
	{0x00B5, 0x00B5}, // MICRO SIGN
	{0x00BA, 0x00BA}, // MASCULINE ORDINAL INDICATOR
	{0x00C0, 0x00D6},
	{0x00D8, 0x00F6},
	{0x00F8, 0x02C1},
	{0x02C6, 0x02D1},
	{0x0300, 0x0374}, // combining marks + Greek lead-in
	{0x0376, 0x0377},
	{0x037A, 0x037D},
	{0x037F, 0x037F},
	{0x0386, 0x038A},
	{0x038C, 0x038C},
	{0x038E, 0x03A1},
	{0x03A3, 0x03F5},
	{0x03F7, 0x0481},
	{0x0483, 0x0487}, // Cyrillic combining marks
	{0x048A, 0x052F}, // Cyrillic
	{0x0531, 0x0556}, // Armenian
	{0x0559, 0x0559},
	{0x0561, 0x0587},
	{0x05D0, 0x05EA}, // Hebrew
	{0x0610, 0x061A},
	{0x0620, 0x0669}, // Arabic letters + Arabic-Indic digits
	{0x066E, 0x06D3},
	{0x06D5, 0x06DC},
	{0x06DF, 0x06E8},
	{0x06EA, 0x06FC},
	{0x06FF, 0x06FF},
	{0x0900, 0x0963}, // Devanagari
	{0x0966, 0x096F}, // Devanagari digits
	{0x0E01, 0x0E3A}, // Thai
	{0x0E40, 0x0E4E},
	{0x0E50, 0x0E59}, // Thai digits
	{0x1E00, 0x1FFF}, // Latin Extended Additional, Greek Extended
	{0x203F, 0x2040}, // UNDERTIE, CHARACTER TIE (connector punctuation)
	{0x2054, 0x2054}, // INVERTED UNDERTIE
	{0x2071, 0x2071},
	{0x207F, 0x207F},
	{0x2090, 0x209C},
	{0x2102, 0x2102},
	{0x2107, 0x2107},
	{0x210A, 0x2113},
	{0x2115, 0x2115},
	{0x2119, 0x211D},
	{0x2124, 0x2124},
	{0x2126, 0x2126},
	{0x2128, 0x2128},
	{0x212A, 0x212D},
	{0x212F, 0x2139},
	{0x213C, 0x213F},
	{0x2145, 0x2149},
	{0x214E, 0x214E},
	{0x2160, 0x2188}, // Roman numerals
	{0x3005, 0x3007}, // Ideographic iteration/zero marks
	{0x3021, 0x3029}, // Hangzhou numerals
	{0x3041, 0x3096}, // Hiragana
	{0x30A1, 0x30FA}, // Katakana
	{0x3105, 0x312F}, // Bopomofo
	{0x3400, 0x4DBF}, // CJK Extension A
	{0x4E00, 0x9FFF}, // CJK Unified Ideographs
	{0xA000, 0xA48C}, // Yi
	{0xAC00, 0xD7A3}, // Hangul Syllables
	{0xF900, 0xFA6D}, // CJK Compatibility Ideographs
	{0xFE33, 0xFE34}, // Vertical connector punctuation
	{0xFE4D, 0xFE4F},
	{0xFF10, 0xFF19}, // Fullwidth digits
	{0xFF21, 0xFF3A}, // Fullwidth Latin upper
	{0xFF3F, 0xFF3F}, // Fullwidth low line
	{0xFF41, 0xFF5A}, // Fullwidth Latin lower
	{0xFF66, 0xFFDC}, // Halfwidth Katakana/Hangul
	{0x10000, 0x1000B}, // Linear B (representative astral sample)
	{0x20000, 0x2A6DF}, // CJK Extension B
}

// isWordChar reports whether c is a "word character": letters, digits, and
// underscore, per Perl's \w class. ASCII code points are classified with a
// fast direct comparison; everything above U+007F is looked up in the
// sorted perlWord range table via binary search.
func isWordChar(c rune) bool {
	if c <= 0x7F {
		return c == '_' ||
			(c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z')
	}
	n := len(perlWord)
	i := sort.Search(n, func(i int) bool {
		return perlWord[i].hi >= c
	})
	return i < n && perlWord[i].lo <= c
}
