package ascii

import (
	segascii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// ValidString reports whether s consists of ASCII bytes only.
func ValidString(s string) bool {
	if hasAVX2 {
		return segascii.ValidString(s)
	}
	return validGo(s)
}

// EqualFold reports whether a and b are equal ignoring ASCII case.
func EqualFold(a, b string) bool {
	if len(a) < 32 || !hasAVX2 {
		return equalFoldGo(a, b)
	}
	return segascii.EqualFoldString(a, b)
}
