package ascii

// Portable implementations. The exported functions in ascii_amd64.go and
// ascii_other.go dispatch here when no accelerated path applies.

const (
	lanes    = ^uint64(0) / 255 // 0x0101010101010101
	highBits = lanes * 0x80
)

// load64 reads s[0:8] as a little-endian word.
func load64(s string) uint64 {
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

// lowerLanes sets the high bit of every byte lane of x holding 'a'..'z'.
// See https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func lowerLanes(x uint64) uint64 {
	const lo, hi = 'a' - 1, 'z' + 1
	y := x & (lanes * 127)
	return (lanes*(127+hi) - y) &^ x & (y + lanes*(127-lo)) & highBits
}

// upperWord folds every lowercase lane of x to uppercase.
func upperWord(x uint64) uint64 {
	return x - lowerLanes(x)>>2
}

func validGo(s string) bool {
	for ; len(s) >= 8; s = s[8:] {
		if load64(s)&highBits != 0 {
			return false
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func equalFoldGo(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for ; len(a) >= 8; a, b = a[8:], b[8:] {
		x, y := load64(a), load64(b)
		if x != y && upperWord(x) != upperWord(y) {
			return false
		}
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && toUpper(a[i]) != toUpper(b[i]) {
			return false
		}
	}
	return true
}
