// Package ascii provides ASCII case folding primitives shared by the matchers.
// Only the letters A-Z and a-z fold; every other byte compares exactly.
package ascii

// AlphabetSize is the number of distinct byte codes a table covers.
const AlphabetSize = 256

// FoldTable maps every byte code to its canonical, upper-cased representative.
// Two bytes are equal under case folding when their entries are equal.
type FoldTable [AlphabetSize]int

// BuildFoldTable returns the case folding table for the byte alphabet.
func BuildFoldTable() FoldTable {
	var t FoldTable
	for c := range t {
		if c >= 'a' && c <= 'z' {
			t[c] = c - 0x20
		} else {
			t[c] = c
		}
	}
	return t
}

// Fold returns the canonical code of c.
func (t *FoldTable) Fold(c byte) int {
	return t[c]
}

// Equal reports whether a and b are the same letter ignoring ASCII case.
func (t *FoldTable) Equal(a, b byte) bool {
	return t[a] == t[b]
}

// OppositeCase returns the other-case form of an ASCII letter.
// ok is false for bytes that are not letters, in which case c is returned.
func OppositeCase(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + 0x20, true
	case c >= 'a' && c <= 'z':
		return c - 0x20, true
	}
	return c, false
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 0x20
	}
	return b
}
