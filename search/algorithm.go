package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects the matching strategy.
type Algorithm uint8

const (
	// BoyerMoore combines the bad-character and good-suffix shifts.
	BoyerMoore Algorithm = iota
	// Simple aligns on the last pattern symbol and uses a single skip heuristic.
	Simple
)

func (a Algorithm) String() string {
	switch a {
	case BoyerMoore:
		return "boyer-moore"
	case Simple:
		return "simple"
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a == BoyerMoore || a == Simple
}

// ParseAlgorithm parses the name of an algorithm, ignoring case.
// Accepted names are "simple", "boyer-moore", "boyermoore" and "bm".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simple":
		return Simple, nil
	case "boyer-moore", "boyermoore", "bm":
		return BoyerMoore, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
