//go:build !amd64

package ascii

// ValidString reports whether s consists of ASCII bytes only.
func ValidString(s string) bool {
	return validGo(s)
}

// EqualFold reports whether a and b are equal ignoring ASCII case.
func EqualFold(a, b string) bool {
	return equalFoldGo(a, b)
}
