package search

import (
	"iter"

	"github.com/mhr3/skipscan/ascii"
)

// BoyerMooreMatcher is a case-insensitive Boyer-Moore matcher using both the
// bad-character and the good-suffix heuristics.
type BoyerMooreMatcher struct {
	pattern    string
	fold       ascii.FoldTable
	badChar    [ascii.AlphabetSize]int
	suffixes   []int // len(pattern)
	goodSuffix []int // len(pattern)+1
}

var _ Matcher = (*BoyerMooreMatcher)(nil)

// NewBoyerMoore preprocesses pattern. It panics if pattern is empty.
func NewBoyerMoore(pattern string) *BoyerMooreMatcher {
	mustPattern(pattern)
	m := &BoyerMooreMatcher{
		pattern: pattern,
		fold:    ascii.BuildFoldTable(),
	}
	m.badChar = buildBadCharShift(pattern)
	m.suffixes = buildSuffixes(pattern, &m.fold)
	m.goodSuffix = buildGoodSuffixShift(m.suffixes)
	return m
}

// buildBadCharShift records, for every byte, the distance from the last
// index to its rightmost occurrence in pattern[:len-1]. Absent bytes shift
// by the full pattern length. Letters are recorded in both cases.
func buildBadCharShift(pattern string) [ascii.AlphabetSize]int {
	n := len(pattern)
	var shift [ascii.AlphabetSize]int
	for c := range shift {
		shift[c] = n
	}
	for i := 0; i < n-1; i++ {
		c := pattern[i]
		shift[c] = n - 1 - i
		if o, ok := ascii.OppositeCase(c); ok {
			shift[o] = n - 1 - i
		}
	}
	return shift
}

// buildSuffixes computes suff[i], the length of the longest suffix of
// pattern[:i+1] that is also a suffix of pattern, ignoring case.
// [f, g) brackets the rightmost window already known to match a suffix.
func buildSuffixes(pattern string, fold *ascii.FoldTable) []int {
	n := len(pattern)
	suff := make([]int, n)
	suff[n-1] = n

	f, g := 0, n-1
	for i := n - 2; i >= 0; i-- {
		if i > g && suff[i+n-1-f] < i-g {
			suff[i] = suff[i+n-1-f]
			continue
		}
		if i < g {
			g = i
		}
		f = i
		for g >= 0 && fold.Equal(pattern[g], pattern[g+n-1-f]) {
			g--
		}
		suff[i] = f - g
	}
	return suff
}

// buildGoodSuffixShift derives the good-suffix table from suff. The first
// pass covers matched suffixes whose longest border is also a pattern
// prefix; the second overwrites entries for suffixes that recur inside the
// pattern. The final entry is unused by the scan and stays zero.
func buildGoodSuffixShift(suff []int) []int {
	n := len(suff)
	shift := make([]int, n+1)
	for i := 0; i < n; i++ {
		shift[i] = n
	}

	j := 0
	for i := n - 1; i >= -1; i-- {
		if i != -1 && suff[i] != i+1 {
			continue
		}
		for ; j < n-1-i; j++ {
			if shift[j] == n {
				shift[j] = n - 1 - i
			}
		}
	}

	for i := 0; i <= n-2; i++ {
		shift[n-1-suff[i]] = n - 1 - i
	}
	return shift
}

func (m *BoyerMooreMatcher) Pattern() string { return m.pattern }

func (m *BoyerMooreMatcher) Algorithm() Algorithm { return BoyerMoore }

func (m *BoyerMooreMatcher) All(text string) iter.Seq[int] {
	return func(yield func(int) bool) {
		m.scan(text, yield)
	}
}

func (m *BoyerMooreMatcher) Index(text string) int {
	return first(m.All(text))
}

func (m *BoyerMooreMatcher) scan(text string, yield func(int) bool) {
	p := m.pattern
	n := len(p)

	for pos := 0; pos <= len(text)-n; {
		j := n - 1
		for j >= 0 && m.fold.Equal(p[j], text[pos+j]) {
			j--
		}
		if j < 0 {
			if !yield(pos) {
				return
			}
			pos += m.goodSuffix[0]
			continue
		}
		pos += max(m.goodSuffix[j], m.badChar[text[pos+j]]-n+1+j)
	}
}
