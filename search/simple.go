package search

import (
	"iter"

	"github.com/mhr3/skipscan/ascii"
)

// SimpleMatcher aligns the last pattern symbol against the text and skips
// using a presence table plus a single shift derived from the last symbol.
type SimpleMatcher struct {
	pattern   string
	fold      ascii.FoldTable
	present   [ascii.AlphabetSize]bool // bytes occurring in the pattern, both cases
	lastShift int                      // distance to the previous occurrence of the last symbol
}

var _ Matcher = (*SimpleMatcher)(nil)

// NewSimple preprocesses pattern. It panics if pattern is empty.
func NewSimple(pattern string) *SimpleMatcher {
	mustPattern(pattern)
	m := &SimpleMatcher{
		pattern: pattern,
		fold:    ascii.BuildFoldTable(),
	}
	m.present = buildPresence(pattern)
	m.lastShift = buildLastSymbolShift(pattern, &m.fold)
	return m
}

func buildPresence(pattern string) [ascii.AlphabetSize]bool {
	var present [ascii.AlphabetSize]bool
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		present[c] = true
		if o, ok := ascii.OppositeCase(c); ok {
			present[o] = true
		}
	}
	return present
}

// buildLastSymbolShift returns the distance from the last index to the
// nearest earlier occurrence of the last symbol, or len(pattern)-1.
func buildLastSymbolShift(pattern string, fold *ascii.FoldTable) int {
	n := len(pattern)
	last := pattern[n-1]
	for i := n - 2; i >= 0; i-- {
		if fold.Equal(last, pattern[i]) {
			return n - 1 - i
		}
	}
	return n - 1
}

func (m *SimpleMatcher) Pattern() string { return m.pattern }

func (m *SimpleMatcher) Algorithm() Algorithm { return Simple }

func (m *SimpleMatcher) All(text string) iter.Seq[int] {
	return func(yield func(int) bool) {
		m.scan(text, yield)
	}
}

func (m *SimpleMatcher) Index(text string) int {
	return first(m.All(text))
}

// scan walks the alignment index i, the text position under the last
// pattern symbol, from left to right.
func (m *SimpleMatcher) scan(text string, yield func(int) bool) {
	p := m.pattern
	n := len(p)
	last := p[n-1]

	for i := n - 1; i < len(text); {
		c := text[i]
		if !m.fold.Equal(last, c) {
			if m.present[c] {
				i++
			} else {
				i += n
			}
			continue
		}

		start := i - n + 1
		j := 0
		for ; j < n-1; j++ {
			c = text[start+j]
			if m.fold.Equal(p[j], c) {
				continue
			}
			skip := 1
			if !m.present[c] {
				// no alignment covering start+j can match
				skip = j + 1
			}
			i += max(m.lastShift, skip)
			break
		}
		if j == n-1 {
			if !yield(start) {
				return
			}
			i++
		}
	}
}
