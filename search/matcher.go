// Package search implements case-insensitive exact substring matchers over
// the byte alphabet.
//
// A Matcher is built once for a pattern and may then scan any number of texts,
// including from several goroutines at once: its shift tables are never
// modified after construction and all per-scan state lives in the scan.
//
// Positions are 0-based byte offsets of the first byte of each occurrence.
// Overlapping occurrences are all reported.
package search

import (
	"fmt"
	"iter"
)

// Matcher finds every occurrence of a preprocessed pattern in a text.
type Matcher interface {
	// Pattern returns the pattern the matcher was built for.
	Pattern() string

	// Algorithm reports the strategy implemented by the matcher.
	Algorithm() Algorithm

	// All returns the start positions of all occurrences in ascending order.
	// The sequence is computed incrementally; each range over it runs a new
	// scan of text.
	All(text string) iter.Seq[int]

	// Index returns the position of the first occurrence, or -1.
	Index(text string) int
}

// New builds a matcher for pattern using the given algorithm.
// It panics if pattern is empty or algo is unknown.
func New(pattern string, algo Algorithm) Matcher {
	switch algo {
	case Simple:
		return NewSimple(pattern)
	case BoyerMoore:
		return NewBoyerMoore(pattern)
	}
	panic(fmt.Sprintf("search: unknown algorithm %d", uint8(algo)))
}

// Collect drains seq into a slice. It returns nil for an empty sequence.
func Collect(seq iter.Seq[int]) []int {
	var out []int
	for pos := range seq {
		out = append(out, pos)
	}
	return out
}

func first(seq iter.Seq[int]) int {
	for pos := range seq {
		return pos
	}
	return -1
}

func mustPattern(pattern string) {
	if len(pattern) == 0 {
		panic("search: pattern must not be empty")
	}
}
