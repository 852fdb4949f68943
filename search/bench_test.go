package search

import (
	"strings"
	"testing"
)

type benchCase struct {
	scenario, text, pattern string
}

func benchCases() []benchCase {
	return []benchCase{
		// pure scan, no match
		{"notfound-1KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 43), "quartz"},
		{"notfound-64KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 2730), "quartz"},

		// match positions
		{"match_end-64KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 2728) + "XYLOPHONE", "xylophone"},
		{"match_mid-1KB", strings.Repeat("x", 500) + "needle" + strings.Repeat("y", 500), "NEEDLE"},

		// many candidate alignments
		{"periodic-1KB", strings.Repeat("abcd", 250) + "abce", "abce"},
		{"samechar-64KB", strings.Repeat("a", 64000) + "aab", "aab"},
		{"overlap-64KB", strings.Repeat("a", 64000), "aaaa"},

		// natural text
		{"kettle-6KB", strings.Repeat(kettle+" ", 64), "kettle on"},
		{"logdate-1KB", strings.Repeat("2024-01-15T10:30:45.123Z INFO Processing request\n", 20) + "2024-99-99", "2024-99"},
	}
}

func BenchmarkMatchers(b *testing.B) {
	for _, bc := range benchCases() {
		for _, algo := range algorithms {
			m := New(bc.pattern, algo)
			b.Run(bc.scenario+"/"+algo.String(), func(b *testing.B) {
				b.SetBytes(int64(len(bc.text)))
				for i := 0; i < b.N; i++ {
					for range m.All(bc.text) {
					}
				}
			})
		}
	}
}

func BenchmarkPreprocess(b *testing.B) {
	patterns := []string{"l", "polly", "GCAGAGAG", strings.Repeat("ab", 32)}
	for _, p := range patterns {
		for _, algo := range algorithms {
			b.Run(algo.String()+"/"+p[:min(len(p), 8)], func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					New(p, algo)
				}
			})
		}
	}
}
