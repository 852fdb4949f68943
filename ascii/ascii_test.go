package ascii

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode"

	segascii "github.com/segmentio/asm/ascii"
	"github.com/stretchr/testify/assert"
)

func makeASCII(rnd *rand.Rand, n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rnd.Uint32() & 0x7f)
	}
	return data
}

// flipCase swaps the case of up to k random letters in b.
func flipCase(rnd *rand.Rand, b []byte, k int) {
	for ; k > 0 && len(b) > 0; k-- {
		idx := rnd.Intn(len(b))
		if c, ok := OppositeCase(b[idx]); ok {
			b[idx] = c
		}
	}
}

var validTests = []struct {
	in  string
	exp bool
}{
	{"", true},
	{"a", true},
	{"abc", true},
	{"Ж", false},
	{"брэд-ЛГТМ", false},
	{"☺☻☹", false},
	{"aa\xe2", false},
	{string([]byte{66, 250}), false},
	{"a�b", false},
	{"\xc0\x80", false},
	{"hellowo\xff", false},
	{"hellowor", true},
	{strings.Repeat("x", 63) + "\x80", false},
	{strings.Repeat("Polly put the kettle on ", 4), true},
}

func TestValidString(t *testing.T) {
	for _, vt := range validTests {
		if got := ValidString(vt.in); got != vt.exp {
			t.Errorf("ValidString(%q) = %v; want %v", vt.in, got, vt.exp)
		}
		// shift the interesting bytes across word boundaries
		pt := "0123456789ab" + vt.in
		if got := ValidString(pt); got != vt.exp {
			t.Errorf("ValidString(%q) = %v; want %v", pt, got, vt.exp)
		}
	}
}

func TestValidStringMatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for n := 0; n < 300; n++ {
		data := makeASCII(rnd, n)
		if n > 0 && rnd.Intn(2) == 0 {
			data[rnd.Intn(n)] |= 0x80
		}
		s := string(data)
		assert.Equal(t, segascii.ValidString(s), ValidString(s), "len=%d", n)
		assert.Equal(t, segascii.ValidString(s), validGo(s), "len=%d", n)
	}
}

func TestEqualFold(t *testing.T) {
	equalFoldTests := []struct {
		s, t string
		out  bool
	}{
		{"", "", true},
		{"abc", "abc", true},
		{"ABcd", "ABcd", true},
		{"123abc", "123ABC", true},
		{"abc", "xyz", false},
		{"abc", "XYZ", false},
		{"abcdefghijk", "abcdefghijX", false},
		{"1", "2", false},
		{"utf-8", "US-ASCII", false},
		{"hello", "Hello", true},
		{"oh hello there!!", "oh HELLO there!!", true},
		{"oh hello there!!", "oh HELLO there !", false},
		{"oh hello there!! friend!", "oh HELLO there!! FRIEND!", true},
		// only letters fold: '@'/'`' and '['/'{' differ by 0x20 too
		{"@", "`", false},
		{"[", "{", false},
		{"ab@cdefgh", "AB`CDEFGH", false},
		{"\xe9", "\xc9", false},
		{strings.Repeat("kettle ", 10), strings.Repeat("KETTLE ", 10), true},
		{strings.Repeat("kettle ", 10), strings.Repeat("KETTLE ", 9) + "KETTLE!", false},
	}

	for _, tt := range equalFoldTests {
		if out := EqualFold(tt.s, tt.t); out != tt.out {
			t.Errorf("EqualFold(%#q, %#q) = %v, want %v", tt.s, tt.t, out, tt.out)
		}
		if out := EqualFold(tt.t, tt.s); out != tt.out {
			t.Errorf("EqualFold(%#q, %#q) = %v, want %v", tt.t, tt.s, out, tt.out)
		}
		if out := equalFoldGo(tt.s, tt.t); out != tt.out {
			t.Errorf("equalFoldGo(%#q, %#q) = %v, want %v", tt.s, tt.t, out, tt.out)
		}
	}
}

func TestEqualFoldMatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for n := 1; n < 200; n++ {
		buf := makeASCII(rnd, n)
		s1 := string(buf)
		flipCase(rnd, buf, 3)
		if rnd.Intn(4) == 0 {
			buf[rnd.Intn(n)] ^= 0x01
		}
		s2 := string(buf)

		want := segascii.EqualFoldString(s1, s2)
		assert.Equal(t, want, EqualFold(s1, s2), "EqualFold(%q, %q)", s1, s2)
		assert.Equal(t, want, equalFoldGo(s1, s2), "equalFoldGo(%q, %q)", s1, s2)
	}
}

func TestHasPrefixSuffixViaEqualFold(t *testing.T) {
	s := "Polly put the kettle on"
	assert.True(t, EqualFold(s[:5], "POLLY"))
	assert.True(t, EqualFold(s[len(s)-9:], "KETTLE ON"))
	assert.False(t, EqualFold(s[:5], "POLLX"))
}

func BenchmarkValidString(b *testing.B) {
	rnd := rand.New(rand.NewSource(0))
	for _, n := range []int{1, 7, 15, 44, 100, 1000} {
		s := string(makeASCII(rnd, n))

		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s)))
			for i := 0; i < b.N; i++ {
				validGo(s)
			}
		})

		b.Run(fmt.Sprintf("dispatch-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s)))
			for i := 0; i < b.N; i++ {
				ValidString(s)
			}
		})
	}
}

func BenchmarkEqualFold(b *testing.B) {
	rnd := rand.New(rand.NewSource(0))
	for _, n := range []int{1, 7, 15, 44, 100, 1000} {
		buf := makeASCII(rnd, n)
		s1 := string(buf)
		for k := 0; k < 3; k++ {
			idx := rnd.Intn(n)
			if unicode.IsUpper(rune(buf[idx])) {
				buf[idx] = byte(unicode.ToLower(rune(buf[idx])))
			} else if unicode.IsLower(rune(buf[idx])) {
				buf[idx] = byte(unicode.ToUpper(rune(buf[idx])))
			}
		}
		s2 := string(buf)

		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s1)))
			for i := 0; i < b.N; i++ {
				equalFoldGo(s1, s2)
			}
		})

		b.Run(fmt.Sprintf("dispatch-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s1)))
			for i := 0; i < b.N; i++ {
				EqualFold(s1, s2)
			}
		})
	}
}
